package models

type AdminUser struct {
	BaseModel

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
