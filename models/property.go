package models

// Property grades and listing types are closed sets; filter inputs outside
// them are ignored by the query layer.
var (
	PropertyGrades       = []string{"A", "B", "C"}
	PropertyListingTypes = []string{"office", "retail", "whole-building"}
)

// Property is a building with offices for lease. It is located under either a
// current Ward or a legacy OldWard; during the address transition an admin
// may dual-assign both, in which case the pair must be connected in the
// merge/split graph (checked at write time, see WardPairConsistent).
type Property struct {
	BaseModel

	Name        string  `gorm:"type:varchar(150);not null;index" json:"name"`
	Slug        string  `gorm:"type:varchar(180);not null;uniqueIndex" json:"slug"`
	Address     string  `gorm:"type:varchar(255)" json:"address"`
	Grade       string  `gorm:"type:varchar(10);index" json:"grade"`
	ListingType string  `gorm:"type:varchar(30);index" json:"listing_type"`
	FloorArea   float64 `gorm:"index" json:"floor_area"`
	PricePerM2  float64 `gorm:"index" json:"price_per_m2"`
	Description string  `gorm:"type:text" json:"description"`
	CoverImage  string  `gorm:"type:varchar(500)" json:"cover_image"`

	WardID    *uint `gorm:"index" json:"ward_id,omitempty"`
	OldWardID *uint `gorm:"index" json:"old_ward_id,omitempty"`

	Ward    *Ward    `gorm:"foreignKey:WardID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"ward,omitempty"`
	OldWard *OldWard `gorm:"foreignKey:OldWardID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"old_ward,omitempty"`

	Images  []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
	Offices []Office        `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"offices,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

type PropertyImage struct {
	BaseModel

	PropertyID uint   `gorm:"index;not null" json:"property_id"`
	URL        string `gorm:"type:varchar(500);not null" json:"url"`
	Position   int    `gorm:"default:0" json:"position"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

// WardPairConsistent reports whether a dual-assigned (ward, old ward) pair is
// connected in the merge/split graph. Single or empty assignments are always
// consistent; so is a pair whose old ward has no recorded successors, since
// the dataset simply does not know better.
func WardPairConsistent(ward *Ward, oldWard *OldWard) bool {
	if ward == nil || oldWard == nil {
		return true
	}
	if len(oldWard.SplitInto) == 0 {
		return true
	}
	for _, w := range oldWard.SplitInto {
		if w.ID == ward.ID {
			return true
		}
	}
	return false
}
