package models

import "time"

type Post struct {
	BaseModel

	Title       string     `gorm:"type:varchar(200);not null;index" json:"title"`
	Slug        string     `gorm:"type:varchar(220);not null;uniqueIndex" json:"slug"`
	Summary     string     `gorm:"type:varchar(500)" json:"summary"`
	Content     string     `gorm:"type:text" json:"content"`
	CoverImage  string     `gorm:"type:varchar(500)" json:"cover_image"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
