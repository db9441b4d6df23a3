package repositories

import (
	"context"
	"errors"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IAdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository() IAdminUserRepository {
	return NewAdminUserRepositoryWithDB(databaseconfig.GetDB())
}

func NewAdminUserRepositoryWithDB(db *gorm.DB) IAdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) findUser(query *gorm.DB, operation string, fields ...zap.Field) (*models.AdminUser, error) {
	var user models.AdminUser
	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		fields = append(fields, zap.Error(err))
		logconfig.Log.Error(operation+" failed", fields...)
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.findUser(
		r.db.WithContext(ctx).Where("email = ?", email),
		"Admin lookup (email)",
		zap.String("email", email),
	)
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	return r.findUser(
		r.db.WithContext(ctx).Where("id = ?", id),
		"Admin lookup (ID)",
		zap.Uint("admin_id", id),
	)
}
