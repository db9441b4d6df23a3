package services

import (
	"context"
	"errors"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"

	"go.uber.org/zap"
)

// ErrInconsistentWardPair rejects a dual-assigned property whose new and
// legacy wards are not connected in the merge/split graph.
var ErrInconsistentWardPair = errors.New("phường mới và phường cũ không khớp với dữ liệu sáp nhập")

type IPropertyService interface {
	GetAllProperties(ctx context.Context, params requests.PropertyListParams) (*requests.PaginatedResult, error)
	GetPropertyByID(ctx context.Context, id uint) (*models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
	GetPropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error)
	CreateProperty(ctx context.Context, req requests.PropertyRequest) error
	UpdateProperty(ctx context.Context, id uint, req requests.PropertyRequest) error
	DeleteProperty(ctx context.Context, id uint) error
}

type PropertyService struct {
	repo         repositories.IPropertyRepository
	districtRepo repositories.IDistrictRepository
}

func NewPropertyService() IPropertyService {
	return &PropertyService{
		repo:         repositories.NewPropertyRepository(),
		districtRepo: repositories.NewDistrictRepository(),
	}
}

func (s *PropertyService) GetAllProperties(ctx context.Context, params requests.PropertyListParams) (*requests.PaginatedResult, error) {
	properties, totalCount, err := s.repo.GetAllProperties(ctx, params)
	if err != nil {
		return nil, err
	}
	return requests.CreatePaginatedResult(properties, totalCount, params.Page, params.PerPage), nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.repo.GetPropertyByID(ctx, id)
	if err != nil {
		logconfig.Log.Warn("Property not found", zap.Uint("property_id", id), zap.Error(err))
		return nil, errors.New("không tìm thấy tòa nhà")
	}
	return property, nil
}

func (s *PropertyService) GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error) {
	property, err := s.repo.GetPropertyBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("không tìm thấy tòa nhà")
	}
	return property, nil
}

func (s *PropertyService) GetPropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error) {
	return s.repo.GetPropertiesByIDs(ctx, ids)
}

// checkWardPair enforces the dual-assignment invariant before a write is
// accepted.
func (s *PropertyService) checkWardPair(ctx context.Context, wardID, oldWardID *uint) error {
	if wardID == nil || oldWardID == nil {
		return nil
	}

	ward, err := s.districtRepo.GetWardByID(ctx, *wardID)
	if err != nil {
		return errors.New("phường mới không tồn tại")
	}
	oldWard, err := s.districtRepo.GetOldWardByID(ctx, *oldWardID)
	if err != nil {
		return errors.New("phường cũ không tồn tại")
	}

	if !models.WardPairConsistent(ward, oldWard) {
		logconfig.Log.Warn("Inconsistent ward pair rejected",
			zap.Uint("ward_id", *wardID),
			zap.Uint("old_ward_id", *oldWardID),
		)
		return ErrInconsistentWardPair
	}
	return nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, req requests.PropertyRequest) error {
	if err := s.checkWardPair(ctx, req.WardID, req.OldWardID); err != nil {
		return err
	}

	property := &models.Property{
		Name:        req.Name,
		Slug:        req.Slug,
		Address:     req.Address,
		Grade:       req.Grade,
		ListingType: req.ListingType,
		FloorArea:   req.FloorArea,
		PricePerM2:  req.PricePerM2,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		WardID:      req.WardID,
		OldWardID:   req.OldWardID,
	}
	property.IsActive = true
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	return s.repo.CreateProperty(ctx, property)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id uint, req requests.PropertyRequest) error {
	property, err := s.repo.GetPropertyByID(ctx, id)
	if err != nil {
		return errors.New("không tìm thấy tòa nhà")
	}

	if err := s.checkWardPair(ctx, req.WardID, req.OldWardID); err != nil {
		return err
	}

	property.Name = req.Name
	property.Slug = req.Slug
	property.Address = req.Address
	property.Grade = req.Grade
	property.ListingType = req.ListingType
	property.FloorArea = req.FloorArea
	property.PricePerM2 = req.PricePerM2
	property.Description = req.Description
	property.CoverImage = req.CoverImage
	property.WardID = req.WardID
	property.OldWardID = req.OldWardID
	property.Ward = nil
	property.OldWard = nil

	return s.repo.UpdateProperty(ctx, property)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id uint) error {
	return s.repo.DeleteProperty(ctx, id)
}
