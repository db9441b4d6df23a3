package repositories

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IDistrictRepository interface {
	LoadDistricts(ctx context.Context) ([]models.District, error)
	GetDistrictByID(ctx context.Context, id uint) (*models.District, error)
	GetWardByID(ctx context.Context, id uint) (*models.Ward, error)
	GetOldWardByID(ctx context.Context, id uint) (*models.OldWard, error)
}

type DistrictRepository struct {
	db *gorm.DB
}

func NewDistrictRepository() IDistrictRepository {
	return NewDistrictRepositoryWithDB(databaseconfig.GetDB())
}

func NewDistrictRepositoryWithDB(db *gorm.DB) IDistrictRepository {
	return &DistrictRepository{db: db}
}

// LoadDistricts returns the full hierarchy ordered by name, with merge/split
// adjacency preloaded from both sides. Every location selector is populated
// from this one call.
func (r *DistrictRepository) LoadDistricts(ctx context.Context) ([]models.District, error) {
	var districts []models.District

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Preload("Wards", func(db *gorm.DB) *gorm.DB { return db.Order("wards.name ASC") }).
		Preload("Wards.MergedFrom").
		Preload("OldWards", func(db *gorm.DB) *gorm.DB { return db.Order("old_wards.name ASC") }).
		Preload("OldWards.SplitInto").
		Find(&districts).Error
	if err != nil {
		logconfig.Log.Error("Districts could not be loaded", zap.Error(err))
		return nil, err
	}

	return districts, nil
}

func (r *DistrictRepository) GetDistrictByID(ctx context.Context, id uint) (*models.District, error) {
	var district models.District
	err := r.db.WithContext(ctx).First(&district, id).Error
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *DistrictRepository) GetWardByID(ctx context.Context, id uint) (*models.Ward, error) {
	var ward models.Ward
	err := r.db.WithContext(ctx).Preload("MergedFrom").First(&ward, id).Error
	if err != nil {
		return nil, err
	}
	return &ward, nil
}

func (r *DistrictRepository) GetOldWardByID(ctx context.Context, id uint) (*models.OldWard, error) {
	var oldWard models.OldWard
	err := r.db.WithContext(ctx).Preload("SplitInto").First(&oldWard, id).Error
	if err != nil {
		return nil, err
	}
	return &oldWard, nil
}
