package models

// District is a top-level administrative region. Districts, wards and old
// wards are created by the boundary seeder and are read-only afterwards; a
// boundary change replaces the whole hierarchy.
type District struct {
	BaseModel

	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`

	Wards    []Ward    `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"wards,omitempty"`
	OldWards []OldWard `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"old_wards,omitempty"`
}

func (District) TableName() string {
	return "districts"
}
