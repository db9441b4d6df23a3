package dualward

import (
	"testing"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture: Quận 1-style merge graph.
//
//	Phường Sài Gòn        <- Phường Bến Thành, Phường Nguyễn Thái Bình
//	Phường Cầu Ông Lãnh   <- Phường Nguyễn Thái Bình, Phường Cô Giang
//	Phường Tân Thuận      <- (nothing recorded)
//	Phường Tân Định       -> (nothing recorded)
func testSelector() *Selector {
	w1 := models.Ward{Name: "Phường Sài Gòn", DistrictID: 1}
	w1.ID = 1
	w2 := models.Ward{Name: "Phường Cầu Ông Lãnh", DistrictID: 1}
	w2.ID = 2
	w3 := models.Ward{Name: "Phường Tân Thuận", DistrictID: 2}
	w3.ID = 3

	o1 := models.OldWard{Name: "Phường Bến Thành", DistrictID: 1}
	o1.ID = 1
	o2 := models.OldWard{Name: "Phường Nguyễn Thái Bình", DistrictID: 1}
	o2.ID = 2
	o3 := models.OldWard{Name: "Phường Cô Giang", DistrictID: 1}
	o3.ID = 3
	o4 := models.OldWard{Name: "Phường Tân Định", DistrictID: 1}
	o4.ID = 4

	o1.SplitInto = []models.Ward{w1}
	o2.SplitInto = []models.Ward{w1, w2}
	o3.SplitInto = []models.Ward{w2}

	w1.MergedFrom = []models.OldWard{o1, o2}
	w2.MergedFrom = []models.OldWard{o2, o3}

	return NewSelector(
		[]models.Ward{w1, w2, w3},
		[]models.OldWard{o1, o2, o3, o4},
	)
}

func wardIDs(wards []models.Ward) []uint {
	ids := make([]uint, 0, len(wards))
	for _, w := range wards {
		ids = append(ids, w.ID)
	}
	return ids
}

func oldWardIDs(oldWards []models.OldWard) []uint {
	ids := make([]uint, 0, len(oldWards))
	for _, o := range oldWards {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCandidateNarrowingMatchesSplitSet(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectOld(2))

	// Exactly the successors of Nguyễn Thái Bình, never a superset.
	assert.ElementsMatch(t, []uint{1, 2}, wardIDs(s.NewCandidates("")))
}

func TestAutoSelectOnlyWhenSingular(t *testing.T) {
	t.Run("single successor auto-selects", func(t *testing.T) {
		s := testSelector()
		require.True(t, s.SelectOld(1))

		require.NotNil(t, s.SelectedNew())
		assert.Equal(t, uint(1), s.SelectedNew().ID)
	})

	t.Run("no recorded successor leaves new unset", func(t *testing.T) {
		s := testSelector()
		require.True(t, s.SelectOld(4))

		assert.Nil(t, s.SelectedNew())
	})

	t.Run("multiple successors leave new unset", func(t *testing.T) {
		s := testSelector()
		require.True(t, s.SelectOld(2))

		assert.Nil(t, s.SelectedNew())
	})
}

func TestStalePairingIsCleared(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectNew(1))
	require.NotNil(t, s.SelectedNew())

	// Cô Giang only split into Cầu Ông Lãnh; Sài Gòn contradicts it.
	require.True(t, s.SelectOld(3))

	assert.Nil(t, s.SelectedNew())
	require.NotNil(t, s.SelectedOld())
	assert.Equal(t, uint(3), s.SelectedOld().ID)
}

func TestValidPairingSurvivesReselection(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectNew(1))
	require.True(t, s.SelectOld(1))
	require.NotNil(t, s.SelectedNew())
	assert.Equal(t, uint(1), s.SelectedNew().ID)

	// Redundant re-selection of the same old ward must not clear anything.
	require.True(t, s.SelectOld(1))
	require.NotNil(t, s.SelectedNew())
	assert.Equal(t, uint(1), s.SelectedNew().ID)
}

func TestUnrecordedOldWardDoesNotNarrow(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectOld(4))

	// All wards stay available and nothing was auto-picked.
	assert.ElementsMatch(t, []uint{1, 2, 3}, wardIDs(s.NewCandidates("")))
	assert.Nil(t, s.SelectedNew())
}

func TestSelectingWardNarrowsOldCandidates(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectNew(1))

	assert.ElementsMatch(t, []uint{1, 2}, oldWardIDs(s.OldCandidates("")))
}

func TestMergelessWardKeepsFullOldList(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectNew(3))

	assert.ElementsMatch(t, []uint{1, 2, 3, 4}, oldWardIDs(s.OldCandidates("")))
	assert.Nil(t, s.SelectedOld())
}

func TestFreeTextFilterIsCaseAndWhitespaceInsensitive(t *testing.T) {
	s := testSelector()

	got := s.NewCandidates("  SÀI   gòn ")
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestFreeTextFilterNeverWidensCandidates(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectOld(2))

	// Tân Thuận exists but is outside the narrowed set; the query must not
	// bring it back.
	assert.Empty(t, s.NewCandidates("Tân Thuận"))
}

func TestUnknownSelectionClears(t *testing.T) {
	s := testSelector()

	require.True(t, s.SelectOld(1))
	assert.False(t, s.SelectOld(99))
	assert.Nil(t, s.SelectedOld())
}
