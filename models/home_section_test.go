package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacySectionExpandsFlatRow(t *testing.T) {
	legacy := HomeSection{
		Title:    "Tòa nhà nổi bật",
		Position: 3,
		Payload:  []byte(`{"featured":[4,7],"html":"<p>Chào mừng</p>"}`),
	}

	out := MigrateLegacySection(legacy)
	require.Len(t, out, 2)

	assert.Equal(t, SectionKindProperty, out[0].Kind)
	assert.Equal(t, "Tòa nhà nổi bật", out[0].Title)
	assert.Equal(t, 3, out[0].Position)
	p, err := out[0].DecodePayload()
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 7}, p.PropertyIDs)

	assert.Equal(t, SectionKindMarkup, out[1].Kind)
	assert.Equal(t, 4, out[1].Position)
	p, err = out[1].DecodePayload()
	require.NoError(t, err)
	assert.Equal(t, "<p>Chào mừng</p>", p.Markup)
}

func TestMigrateLegacySectionLeavesVariantRowsAlone(t *testing.T) {
	section := HomeSection{Kind: SectionKindPost, Payload: []byte(`{"post_ids":[1]}`)}
	assert.Nil(t, MigrateLegacySection(section))
}

func TestMigrateLegacySectionIgnoresUnreadablePayload(t *testing.T) {
	assert.Nil(t, MigrateLegacySection(HomeSection{Payload: []byte("not json")}))
}

func TestWardPairConsistent(t *testing.T) {
	w1 := Ward{Name: "Phường Sài Gòn"}
	w1.ID = 1
	w2 := Ward{Name: "Phường Bến Thành"}
	w2.ID = 2

	split := OldWard{Name: "Phường Bến Nghé", SplitInto: []Ward{w1}}
	unrecorded := OldWard{Name: "Phường Tân Định"}

	assert.True(t, WardPairConsistent(nil, nil))
	assert.True(t, WardPairConsistent(&w1, nil))
	assert.True(t, WardPairConsistent(nil, &split))

	assert.True(t, WardPairConsistent(&w1, &split))
	assert.False(t, WardPairConsistent(&w2, &split))

	// No recorded successors means the dataset cannot contradict the pair.
	assert.True(t, WardPairConsistent(&w2, &unrecorded))
}
