package models

// Office is a leasable unit inside a Property. It has no location columns of
// its own; district filtering goes through the owning property's ward or old
// ward linkage.
type Office struct {
	BaseModel

	PropertyID uint    `gorm:"index;not null" json:"property_id"`
	Name       string  `gorm:"type:varchar(150);not null" json:"name"`
	Floor      string  `gorm:"type:varchar(30)" json:"floor"`
	Area       float64 `gorm:"index" json:"area"`
	PricePerM2 float64 `gorm:"index" json:"price_per_m2"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property,omitempty"`
}

func (Office) TableName() string {
	return "offices"
}
