package services

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/imagehost"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"

	"go.uber.org/zap"
)

// CleanupReport summarizes one orphan-image reconciliation run.
type CleanupReport struct {
	TotalSeen       int      `json:"total_seen"`
	TotalReferenced int      `json:"total_referenced"`
	Orphans         int      `json:"orphans"`
	Deleted         int      `json:"deleted"`
	Failed          int      `json:"failed"`
	Errors          []string `json:"errors,omitempty"`
}

type ICleanupService interface {
	ReconcileImages(ctx context.Context) (*CleanupReport, error)
	ReferencedImageKeys(ctx context.Context) (map[string]struct{}, error)
}

type CleanupService struct {
	imageRepo repositories.IImageRepository
	host      imagehost.Client
}

func NewCleanupService(host imagehost.Client) ICleanupService {
	return &CleanupService{
		imageRepo: repositories.NewImageRepository(),
		host:      host,
	}
}

func NewCleanupServiceWithRepo(repo repositories.IImageRepository, host imagehost.Client) ICleanupService {
	return &CleanupService{imageRepo: repo, host: host}
}

// ReferencedImageKeys maps every image URL stored in the database to the
// host's opaque reference key. URLs that do not point at the media host are
// skipped.
func (s *CleanupService) ReferencedImageKeys(ctx context.Context) (map[string]struct{}, error) {
	urls, err := s.imageRepo.CollectImageURLs(ctx)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if key := imagehost.KeyFromURL(u); key != "" {
			keys[key] = struct{}{}
		}
	}
	return keys, nil
}

// ReconcileImages diffs the media host's inventory against the database
// references and deletes hosted images nothing references anymore. One
// image's deletion failing does not stop the batch; failures are collected
// into the report.
func (s *CleanupService) ReconcileImages(ctx context.Context) (*CleanupReport, error) {
	referenced, err := s.ReferencedImageKeys(ctx)
	if err != nil {
		return nil, err
	}

	hosted, err := s.host.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	report := &CleanupReport{
		TotalSeen:       len(hosted),
		TotalReferenced: len(referenced),
	}

	for _, img := range hosted {
		if _, ok := referenced[img.Key]; ok {
			continue
		}
		report.Orphans++

		if err := s.host.DeleteImage(ctx, img.Key); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, img.Key+": "+err.Error())
			logconfig.Log.Warn("Orphan image could not be deleted",
				zap.String("key", img.Key),
				zap.Error(err),
			)
			continue
		}
		report.Deleted++
	}

	logconfig.SLog.Infow("Image reconciliation finished",
		"total_seen", report.TotalSeen,
		"total_referenced", report.TotalReferenced,
		"orphans", report.Orphans,
		"deleted", report.Deleted,
		"failed", report.Failed,
	)
	return report, nil
}
