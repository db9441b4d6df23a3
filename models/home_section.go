package models

import "encoding/json"

// Home page content blocks form a closed variant: a section shows a list of
// properties, a list of posts, or raw markup. Older deployments stored one
// flat blob (featured property ids + html); those rows carry an empty Kind
// and are migrated to variant rows on first read.
const (
	SectionKindProperty = "property"
	SectionKindPost     = "post"
	SectionKindMarkup   = "markup"
)

type HomeSection struct {
	BaseModel

	Kind     string `gorm:"type:varchar(20);index" json:"kind"`
	Title    string `gorm:"type:varchar(150)" json:"title"`
	Position int    `gorm:"default:0;index" json:"position"`
	Payload  []byte `gorm:"type:jsonb" json:"payload"`
}

func (HomeSection) TableName() string {
	return "home_sections"
}

type SectionPayload struct {
	PropertyIDs []uint `json:"property_ids,omitempty"`
	PostIDs     []uint `json:"post_ids,omitempty"`
	Markup      string `json:"markup,omitempty"`
}

func (s *HomeSection) DecodePayload() (SectionPayload, error) {
	var p SectionPayload
	if len(s.Payload) == 0 {
		return p, nil
	}
	err := json.Unmarshal(s.Payload, &p)
	return p, err
}

func (s *HomeSection) EncodePayload(p SectionPayload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.Payload = raw
	return nil
}

// legacyHomeContent is the pre-variant flat shape.
type legacyHomeContent struct {
	Featured []uint `json:"featured"`
	HTML     string `json:"html"`
}

// MigrateLegacySection expands a flat legacy row into variant rows. Returns
// nil when the row is already in the new shape.
func MigrateLegacySection(s HomeSection) []HomeSection {
	if s.Kind != "" {
		return nil
	}

	var legacy legacyHomeContent
	if err := json.Unmarshal(s.Payload, &legacy); err != nil {
		return nil
	}

	var out []HomeSection
	if len(legacy.Featured) > 0 {
		sec := HomeSection{Kind: SectionKindProperty, Title: s.Title, Position: s.Position}
		if err := sec.EncodePayload(SectionPayload{PropertyIDs: legacy.Featured}); err == nil {
			out = append(out, sec)
		}
	}
	if legacy.HTML != "" {
		sec := HomeSection{Kind: SectionKindMarkup, Position: s.Position + 1}
		if err := sec.EncodePayload(SectionPayload{Markup: legacy.HTML}); err == nil {
			out = append(out, sec)
		}
	}
	return out
}
