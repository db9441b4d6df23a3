package repositories

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"gorm.io/gorm"
)

type IImageRepository interface {
	CollectImageURLs(ctx context.Context) ([]string, error)
}

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository() IImageRepository {
	return NewImageRepositoryWithDB(databaseconfig.GetDB())
}

func NewImageRepositoryWithDB(db *gorm.DB) IImageRepository {
	return &ImageRepository{db: db}
}

// CollectImageURLs gathers every image URL the database references: property
// covers, gallery images and post covers. Soft-deleted rows are included so
// a restorable record never loses its images to the cleanup job.
func (r *ImageRepository) CollectImageURLs(ctx context.Context) ([]string, error) {
	var urls []string

	collect := func(query *gorm.DB, column string) error {
		var batch []string
		if err := query.Where(column + " <> ''").Pluck(column, &batch).Error; err != nil {
			return err
		}
		urls = append(urls, batch...)
		return nil
	}

	db := r.db.WithContext(ctx).Unscoped()

	if err := collect(db.Model(&models.Property{}), "cover_image"); err != nil {
		return nil, err
	}
	if err := collect(db.Model(&models.PropertyImage{}), "url"); err != nil {
		return nil, err
	}
	if err := collect(db.Model(&models.Post{}), "cover_image"); err != nil {
		return nil, err
	}

	return urls, nil
}
