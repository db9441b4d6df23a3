package models

// OldWard is a legacy (pre-reorganization) administrative unit, retained so
// properties can keep their historical address. SplitInto lists the current
// wards the unit was divided into; it reads the same ward_merges rows as
// Ward.MergedFrom.
type OldWard struct {
	BaseModel

	DistrictID uint   `gorm:"index;not null" json:"district_id"`
	Name       string `gorm:"type:varchar(100);not null;index" json:"name"`

	District  *District `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"district,omitempty"`
	SplitInto []Ward    `gorm:"many2many:ward_merges;joinForeignKey:OldWardID;joinReferences:WardID" json:"split_into,omitempty"`
}

func (OldWard) TableName() string {
	return "old_wards"
}
