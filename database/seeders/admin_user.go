package seeders

import (
	"errors"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the back-office account if it does not exist yet.
func SeedAdminUser(db *gorm.DB) error {
	email := envconfig.String("ADMIN_EMAIL", "admin@thewellingtonoffices.com")

	var existing models.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := envconfig.String("ADMIN_PASSWORD", "")
	if password == "" {
		logconfig.SLog.Warn("ADMIN_PASSWORD not set, admin account not created")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Name:     envconfig.String("ADMIN_NAME", "Administrator"),
		Email:    email,
		Password: string(hash),
	}
	admin.IsActive = true

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logconfig.SLog.Infow("Admin account created", "email", email)
	return nil
}
