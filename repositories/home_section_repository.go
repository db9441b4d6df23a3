package repositories

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"gorm.io/gorm"
)

type IHomeSectionRepository interface {
	GetSections(ctx context.Context) ([]models.HomeSection, error)
	ReplaceSection(ctx context.Context, legacyID uint, replacements []models.HomeSection) error
	SaveSection(ctx context.Context, section *models.HomeSection) error
	DeleteSection(ctx context.Context, id uint) error
}

type HomeSectionRepository struct {
	db *gorm.DB
}

func NewHomeSectionRepository() IHomeSectionRepository {
	return NewHomeSectionRepositoryWithDB(databaseconfig.GetDB())
}

func NewHomeSectionRepositoryWithDB(db *gorm.DB) IHomeSectionRepository {
	return &HomeSectionRepository{db: db}
}

func (r *HomeSectionRepository) GetSections(ctx context.Context) ([]models.HomeSection, error) {
	var sections []models.HomeSection
	err := r.db.WithContext(ctx).Order("position ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// ReplaceSection swaps a legacy flat row for its migrated variant rows in
// one transaction, so a crash mid-migration never loses content.
func (r *HomeSectionRepository) ReplaceSection(ctx context.Context, legacyID uint, replacements []models.HomeSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.HomeSection{}, legacyID).Error; err != nil {
			return err
		}
		for i := range replacements {
			if err := tx.Create(&replacements[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *HomeSectionRepository) SaveSection(ctx context.Context, section *models.HomeSection) error {
	return r.db.WithContext(ctx).Save(section).Error
}

func (r *HomeSectionRepository) DeleteSection(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HomeSection{}, id).Error
}
