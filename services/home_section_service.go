package services

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"

	"go.uber.org/zap"
)

type IHomeSectionService interface {
	GetSections(ctx context.Context) ([]models.HomeSection, error)
	SaveSection(ctx context.Context, section *models.HomeSection) error
	DeleteSection(ctx context.Context, id uint) error
}

type HomeSectionService struct {
	repo repositories.IHomeSectionRepository
}

func NewHomeSectionService() IHomeSectionService {
	return &HomeSectionService{repo: repositories.NewHomeSectionRepository()}
}

// GetSections returns the home-page blocks, migrating any legacy flat row to
// variant rows on first read and persisting the result.
func (s *HomeSectionService) GetSections(ctx context.Context) ([]models.HomeSection, error) {
	sections, err := s.repo.GetSections(ctx)
	if err != nil {
		return nil, err
	}

	migrated := false
	for _, sec := range sections {
		replacements := models.MigrateLegacySection(sec)
		if replacements == nil {
			continue
		}
		if err := s.repo.ReplaceSection(ctx, sec.ID, replacements); err != nil {
			logconfig.Log.Warn("Legacy home section could not be migrated",
				zap.Uint("section_id", sec.ID),
				zap.Error(err),
			)
			continue
		}
		migrated = true
	}

	if migrated {
		return s.repo.GetSections(ctx)
	}
	return sections, nil
}

func (s *HomeSectionService) SaveSection(ctx context.Context, section *models.HomeSection) error {
	return s.repo.SaveSection(ctx, section)
}

func (s *HomeSectionService) DeleteSection(ctx context.Context, id uint) error {
	return s.repo.DeleteSection(ctx, id)
}
