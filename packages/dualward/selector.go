// Package dualward keeps a user's paired ward selections consistent across
// the old and new administrative taxonomies. A legacy ward may have split
// into several current wards and a current ward may have merged several
// legacy ones, so the relation is not a bijection: the selector only
// auto-fills when the relation is singular and only clears a selection when
// it actually contradicts the merge/split graph.
package dualward

import (
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
)

// Selector holds the two independent optional selections for one user
// interaction. It is not safe for concurrent use; each interaction gets its
// own instance.
type Selector struct {
	wards    []models.Ward
	oldWards []models.OldWard

	wardsByID    map[uint]*models.Ward
	oldWardsByID map[uint]*models.OldWard

	selectedNew *models.Ward
	selectedOld *models.OldWard
}

// NewSelector builds a selector over the full hierarchy. Wards must have
// MergedFrom preloaded and old wards SplitInto, since narrowing reads both.
func NewSelector(wards []models.Ward, oldWards []models.OldWard) *Selector {
	s := &Selector{
		wards:        wards,
		oldWards:     oldWards,
		wardsByID:    make(map[uint]*models.Ward, len(wards)),
		oldWardsByID: make(map[uint]*models.OldWard, len(oldWards)),
	}
	for i := range wards {
		s.wardsByID[wards[i].ID] = &s.wards[i]
	}
	for i := range oldWards {
		s.oldWardsByID[oldWards[i].ID] = &s.oldWards[i]
	}
	return s
}

func (s *Selector) SelectedNew() *models.Ward    { return s.selectedNew }
func (s *Selector) SelectedOld() *models.OldWard { return s.selectedOld }

func (s *Selector) ClearNew() { s.selectedNew = nil }
func (s *Selector) ClearOld() { s.selectedOld = nil }

// SelectOld sets the legacy-side selection and reconciles the new side:
// a sole successor is auto-selected when the new side is empty, and an
// existing new-side selection that is not among the successors is cleared.
// An unknown id clears the legacy side. Returns whether the id resolved.
func (s *Selector) SelectOld(id uint) bool {
	old, ok := s.oldWardsByID[id]
	if !ok {
		s.selectedOld = nil
		return false
	}
	s.selectedOld = old

	split := old.SplitInto
	if len(split) == 0 {
		// No recorded successor; the user picks the new side freely.
		return true
	}

	if s.selectedNew != nil {
		if !containsWard(split, s.selectedNew.ID) {
			s.selectedNew = nil
		}
		return true
	}

	if len(split) == 1 {
		s.selectedNew = s.wardsByID[split[0].ID]
	}
	return true
}

// SelectNew is the mirror of SelectOld, reconciling through MergedFrom.
func (s *Selector) SelectNew(id uint) bool {
	ward, ok := s.wardsByID[id]
	if !ok {
		s.selectedNew = nil
		return false
	}
	s.selectedNew = ward

	merged := ward.MergedFrom
	if len(merged) == 0 {
		return true
	}

	if s.selectedOld != nil {
		if !containsOldWard(merged, s.selectedOld.ID) {
			s.selectedOld = nil
		}
		return true
	}

	if len(merged) == 1 {
		s.selectedOld = s.oldWardsByID[merged[0].ID]
	}
	return true
}

// NewCandidates lists the wards the user may pick on the new side, narrowed
// to the current old selection's successors when those are recorded, then
// filtered by the free-text query. Filtering never widens the candidate set.
func (s *Selector) NewCandidates(query string) []models.Ward {
	base := s.wards
	if s.selectedOld != nil && len(s.selectedOld.SplitInto) > 0 {
		base = nil
		for _, w := range s.selectedOld.SplitInto {
			if full, ok := s.wardsByID[w.ID]; ok {
				base = append(base, *full)
			}
		}
	}

	q := normalize(query)
	if q == "" {
		return base
	}
	var out []models.Ward
	for _, w := range base {
		if strings.Contains(normalize(w.Name), q) {
			out = append(out, w)
		}
	}
	return out
}

// OldCandidates is the mirror of NewCandidates via MergedFrom.
func (s *Selector) OldCandidates(query string) []models.OldWard {
	base := s.oldWards
	if s.selectedNew != nil && len(s.selectedNew.MergedFrom) > 0 {
		base = nil
		for _, o := range s.selectedNew.MergedFrom {
			if full, ok := s.oldWardsByID[o.ID]; ok {
				base = append(base, *full)
			}
		}
	}

	q := normalize(query)
	if q == "" {
		return base
	}
	var out []models.OldWard
	for _, o := range base {
		if strings.Contains(normalize(o.Name), q) {
			out = append(out, o)
		}
	}
	return out
}

func containsWard(wards []models.Ward, id uint) bool {
	for _, w := range wards {
		if w.ID == id {
			return true
		}
	}
	return false
}

func containsOldWard(oldWards []models.OldWard, id uint) bool {
	for _, o := range oldWards {
		if o.ID == id {
			return true
		}
	}
	return false
}

// normalize lowercases and strips all whitespace so matching ignores case
// and spacing.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
