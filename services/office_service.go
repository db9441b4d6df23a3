package services

import (
	"context"
	"errors"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
)

type IOfficeService interface {
	GetAllOffices(ctx context.Context, params requests.OfficeListParams) (*requests.PaginatedResult, error)
	GetOfficeByID(ctx context.Context, id uint) (*models.Office, error)
	CreateOffice(ctx context.Context, req requests.OfficeRequest) error
	UpdateOffice(ctx context.Context, id uint, req requests.OfficeRequest) error
	DeleteOffice(ctx context.Context, id uint) error
}

type OfficeService struct {
	repo         repositories.IOfficeRepository
	propertyRepo repositories.IPropertyRepository
}

func NewOfficeService() IOfficeService {
	return &OfficeService{
		repo:         repositories.NewOfficeRepository(),
		propertyRepo: repositories.NewPropertyRepository(),
	}
}

func (s *OfficeService) GetAllOffices(ctx context.Context, params requests.OfficeListParams) (*requests.PaginatedResult, error) {
	offices, totalCount, err := s.repo.GetAllOffices(ctx, params)
	if err != nil {
		return nil, err
	}
	return requests.CreatePaginatedResult(offices, totalCount, params.Page, params.PerPage), nil
}

func (s *OfficeService) GetOfficeByID(ctx context.Context, id uint) (*models.Office, error) {
	office, err := s.repo.GetOfficeByID(ctx, id)
	if err != nil {
		return nil, errors.New("không tìm thấy văn phòng")
	}
	return office, nil
}

func (s *OfficeService) CreateOffice(ctx context.Context, req requests.OfficeRequest) error {
	if _, err := s.propertyRepo.GetPropertyByID(ctx, req.PropertyID); err != nil {
		return errors.New("tòa nhà không tồn tại")
	}

	office := &models.Office{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Floor:      req.Floor,
		Area:       req.Area,
		PricePerM2: req.PricePerM2,
	}
	office.IsActive = true

	return s.repo.CreateOffice(ctx, office)
}

func (s *OfficeService) UpdateOffice(ctx context.Context, id uint, req requests.OfficeRequest) error {
	office, err := s.repo.GetOfficeByID(ctx, id)
	if err != nil {
		return errors.New("không tìm thấy văn phòng")
	}

	if office.PropertyID != req.PropertyID {
		if _, err := s.propertyRepo.GetPropertyByID(ctx, req.PropertyID); err != nil {
			return errors.New("tòa nhà không tồn tại")
		}
	}

	office.PropertyID = req.PropertyID
	office.Name = req.Name
	office.Floor = req.Floor
	office.Area = req.Area
	office.PricePerM2 = req.PricePerM2
	office.Property = nil

	return s.repo.UpdateOffice(ctx, office)
}

func (s *OfficeService) DeleteOffice(ctx context.Context, id uint) error {
	return s.repo.DeleteOffice(ctx, id)
}
