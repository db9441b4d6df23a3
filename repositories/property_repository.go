package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IPropertyRepository interface {
	GetAllProperties(ctx context.Context, params requests.PropertyListParams) ([]models.Property, int64, error)
	GetPropertyByID(ctx context.Context, id uint) (*models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
	GetPropertyIDsInDistrict(ctx context.Context, districtID uint) ([]uint, error)
	GetPropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error)
	CreateProperty(ctx context.Context, property *models.Property) error
	UpdateProperty(ctx context.Context, property *models.Property) error
	DeleteProperty(ctx context.Context, id uint) error
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository() IPropertyRepository {
	return NewPropertyRepositoryWithDB(databaseconfig.GetDB())
}

func NewPropertyRepositoryWithDB(db *gorm.DB) IPropertyRepository {
	return &PropertyRepository{db: db}
}

// districtScope matches a property through either taxonomy: its current ward
// or its legacy ward belonging to the district.
func districtScope(districtID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"ward_id IN (?) OR old_ward_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&models.Ward{}).Select("id").Where("district_id = ?", districtID),
			db.Session(&gorm.Session{NewDB: true}).Model(&models.OldWard{}).Select("id").Where("district_id = ?", districtID),
		)
	}
}

// rangeScope applies independent optional bounds; a nil bound leaves that
// side unbounded.
func rangeScope(column string, min, max *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}

func propertyFilterScope(params requests.PropertyListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.DistrictID != nil {
			db = db.Scopes(districtScope(*params.DistrictID))
		}
		if params.WardID != nil {
			db = db.Where("ward_id = ?", *params.WardID)
		}
		if params.OldWardID != nil {
			db = db.Where("old_ward_id = ?", *params.OldWardID)
		}
		if params.Grade != "" {
			db = db.Where("grade = ?", params.Grade)
		}
		if params.ListingType != "" {
			db = db.Where("listing_type = ?", params.ListingType)
		}
		if params.Keyword != "" {
			kw := "%" + strings.ToLower(params.Keyword) + "%"
			db = db.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", kw, kw)
		}
		return db.Scopes(
			rangeScope("floor_area", params.AreaMin, params.AreaMax),
			rangeScope("price_per_m2", params.PriceMin, params.PriceMax),
		)
	}
}

// GetAllProperties runs the count and the page inside one transaction so
// both see the same snapshot of the filter.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, params requests.PropertyListParams) ([]models.Property, int64, error) {
	var (
		properties []models.Property
		totalCount int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filtered := tx.Model(&models.Property{}).Scopes(propertyFilterScope(params))

		if err := filtered.Count(&totalCount).Error; err != nil {
			return err
		}

		return filtered.
			Preload("Ward").
			Preload("OldWard").
			Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("property_images.position ASC") }).
			Order("properties.created_at DESC").
			Limit(params.PerPage).
			Offset(params.Offset()).
			Find(&properties).Error
	})
	if err != nil {
		logconfig.Log.Error("Property listing query failed", zap.Error(err))
		return nil, 0, err
	}

	return properties, totalCount, nil
}

// GetPropertyIDsInDistrict resolves the property id set a district filter
// scopes to, via either ward linkage.
func (r *PropertyRepository) GetPropertyIDsInDistrict(ctx context.Context, districtID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Scopes(districtScope(districtID)).
		Pluck("id", &ids).Error
	if err != nil {
		logconfig.Log.Error("Property id resolution failed",
			zap.Uint("district_id", districtID),
			zap.Error(err),
		)
		return nil, err
	}
	return ids, nil
}

func (r *PropertyRepository) GetPropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	var properties []models.Property
	err := r.db.WithContext(ctx).
		Preload("Ward").
		Preload("OldWard").
		Where("id IN ?", ids).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) findProperty(query *gorm.DB, operation string, fields ...zap.Field) (*models.Property, error) {
	var property models.Property
	err := query.
		Preload("Ward.District").
		Preload("OldWard.District").
		Preload("OldWard.SplitInto").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("property_images.position ASC") }).
		Preload("Offices").
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		fields = append(fields, zap.Error(err))
		logconfig.Log.Error(operation+" failed", fields...)
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	return r.findProperty(
		r.db.WithContext(ctx).Where("id = ?", id),
		"Property lookup (ID)",
		zap.Uint("property_id", id),
	)
}

func (r *PropertyRepository) GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error) {
	return r.findProperty(
		r.db.WithContext(ctx).Where("slug = ?", slug),
		"Property lookup (slug)",
		zap.String("slug", slug),
	)
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		logconfig.Log.Error("Property creation failed",
			zap.String("name", property.Name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *PropertyRepository) UpdateProperty(ctx context.Context, property *models.Property) error {
	result := r.db.WithContext(ctx).Save(property)
	if result.Error != nil {
		logconfig.Log.Error("Property update failed",
			zap.Uint("property_id", property.ID),
			zap.Error(result.Error),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Property{}, id).Error
}
