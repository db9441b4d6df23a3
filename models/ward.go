package models

// Ward is a current (post-reorganization) administrative unit. MergedFrom
// lists the legacy wards that were consolidated into it. The relation is
// stored once, in the ward_merges join table; OldWard.SplitInto reads the
// same rows from the other side, so the two views cannot drift.
type Ward struct {
	BaseModel

	DistrictID uint   `gorm:"index;not null" json:"district_id"`
	Name       string `gorm:"type:varchar(100);not null;index" json:"name"`

	District   *District `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"district,omitempty"`
	MergedFrom []OldWard `gorm:"many2many:ward_merges;joinForeignKey:WardID;joinReferences:OldWardID" json:"merged_from,omitempty"`
}

func (Ward) TableName() string {
	return "wards"
}
