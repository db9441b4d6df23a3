package repositories

import (
	"context"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IOfficeRepository interface {
	GetAllOffices(ctx context.Context, params requests.OfficeListParams) ([]models.Office, int64, error)
	GetOfficeByID(ctx context.Context, id uint) (*models.Office, error)
	CreateOffice(ctx context.Context, office *models.Office) error
	UpdateOffice(ctx context.Context, office *models.Office) error
	DeleteOffice(ctx context.Context, id uint) error
}

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository() IOfficeRepository {
	return NewOfficeRepositoryWithDB(databaseconfig.GetDB())
}

func NewOfficeRepositoryWithDB(db *gorm.DB) IOfficeRepository {
	return &OfficeRepository{db: db}
}

// GetAllOffices scopes a district filter through the owning property's ward
// or old-ward linkage. A district that matches no properties short-circuits
// to an empty result before any office query is built; falling back to an
// unscoped query here would return every office under a filter that matched
// nothing.
func (r *OfficeRepository) GetAllOffices(ctx context.Context, params requests.OfficeListParams) ([]models.Office, int64, error) {
	var (
		offices    []models.Office
		totalCount int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var propertyIDs []uint
		if params.DistrictID != nil {
			if err := tx.Model(&models.Property{}).
				Scopes(districtScope(*params.DistrictID)).
				Pluck("id", &propertyIDs).Error; err != nil {
				return err
			}
			if len(propertyIDs) == 0 {
				offices = []models.Office{}
				totalCount = 0
				return nil
			}
		}

		filtered := tx.Model(&models.Office{}).Scopes(
			rangeScope("area", params.AreaMin, params.AreaMax),
			rangeScope("price_per_m2", params.PriceMin, params.PriceMax),
		)
		if len(propertyIDs) > 0 {
			filtered = filtered.Where("property_id IN ?", propertyIDs)
		}

		if err := filtered.Count(&totalCount).Error; err != nil {
			return err
		}

		return filtered.
			Preload("Property").
			Order("offices.created_at DESC").
			Limit(params.PerPage).
			Offset(params.Offset()).
			Find(&offices).Error
	})
	if err != nil {
		logconfig.Log.Error("Office listing query failed", zap.Error(err))
		return nil, 0, err
	}

	return offices, totalCount, nil
}

func (r *OfficeRepository) GetOfficeByID(ctx context.Context, id uint) (*models.Office, error) {
	var office models.Office
	err := r.db.WithContext(ctx).Preload("Property").First(&office, id).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *OfficeRepository) CreateOffice(ctx context.Context, office *models.Office) error {
	if err := r.db.WithContext(ctx).Create(office).Error; err != nil {
		logconfig.Log.Error("Office creation failed",
			zap.String("name", office.Name),
			zap.Uint("property_id", office.PropertyID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *OfficeRepository) UpdateOffice(ctx context.Context, office *models.Office) error {
	result := r.db.WithContext(ctx).Save(office)
	if result.Error != nil {
		logconfig.Log.Error("Office update failed",
			zap.Uint("office_id", office.ID),
			zap.Error(result.Error),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfficeRepository) DeleteOffice(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Office{}, id).Error
}
