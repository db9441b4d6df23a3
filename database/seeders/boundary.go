package seeders

import (
	"errors"
	"fmt"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WardRecord is one row of the boundary-change dataset: a new ward, the
// district it belongs to (pre-absorption name), and the legacy wards that
// were consolidated into it.
type WardRecord struct {
	District   string
	Ward       string
	MergedFrom []string
}

// OldWardRecord lists a legacy ward that survived the reorganization without
// a recorded successor, so it never appears in any MergedFrom list.
type OldWardRecord struct {
	District string
	Ward     string
}

// ResolveProvince maps a legacy district name that was absorbed into another
// province/city to the name of its current container. Unmapped names pass
// through unchanged. Runs at seed time only; queries never see legacy names.
func ResolveProvince(name string) string {
	if resolved, ok := provinceAbsorption[name]; ok {
		return resolved
	}
	return name
}

// SeedBoundaryData rebuilds the administrative hierarchy from the boundary
// dataset. The rebuild is destructive and idempotent within a run: offices,
// properties, wards and districts are cleared in dependency order before
// re-insertion. Rows whose district cannot be resolved are dropped with a
// warning; only a failure that leaves the hierarchy unusable aborts the seed.
func SeedBoundaryData(db *gorm.DB) error {
	return SeedBoundary(db, districtNames, wardRecords, oldWardRecords)
}

func SeedBoundary(db *gorm.DB, districts []string, wards []WardRecord, oldWards []OldWardRecord) error {
	logconfig.SLog.Info("Seeding administrative boundary data...")

	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearHierarchy(tx); err != nil {
			return fmt.Errorf("hierarchy could not be cleared: %w", err)
		}

		districtByName := make(map[string]*models.District, len(districts))
		for _, name := range districts {
			d := &models.District{Name: name}
			d.IsActive = true
			if err := tx.Create(d).Error; err != nil {
				return fmt.Errorf("district %q could not be created: %w", name, err)
			}
			districtByName[name] = d
		}

		skipped := 0
		for _, rec := range wards {
			districtName := ResolveProvince(rec.District)
			district, ok := districtByName[districtName]
			if !ok {
				logconfig.Log.Warn("Ward row dropped, district not found",
					zap.String("ward", rec.Ward),
					zap.String("district", rec.District),
					zap.String("resolved_district", districtName),
				)
				skipped++
				continue
			}

			ward := models.Ward{DistrictID: district.ID, Name: rec.Ward}
			ward.IsActive = true
			if err := tx.Create(&ward).Error; err != nil {
				return fmt.Errorf("ward %q could not be created: %w", rec.Ward, err)
			}

			for _, oldName := range rec.MergedFrom {
				old, err := findOrCreateOldWard(tx, district.ID, oldName)
				if err != nil {
					return err
				}
				if err := tx.Model(&ward).Association("MergedFrom").Append(old); err != nil {
					logconfig.Log.Warn("Merge edge could not be recorded",
						zap.String("ward", rec.Ward),
						zap.String("old_ward", oldName),
						zap.Error(err),
					)
				}
			}
		}

		for _, rec := range oldWards {
			districtName := ResolveProvince(rec.District)
			district, ok := districtByName[districtName]
			if !ok {
				logconfig.Log.Warn("Old ward row dropped, district not found",
					zap.String("old_ward", rec.Ward),
					zap.String("district", rec.District),
				)
				skipped++
				continue
			}
			if _, err := findOrCreateOldWard(tx, district.ID, rec.Ward); err != nil {
				return err
			}
		}

		logconfig.SLog.Infow("Boundary seed finished",
			"districts", len(districts),
			"ward_rows", len(wards),
			"skipped_rows", skipped,
		)
		return nil
	})
}

// clearHierarchy deletes dependents before owners so foreign keys never
// dangle mid-seed: offices, properties, merge edges, wards, old wards,
// districts.
func clearHierarchy(tx *gorm.DB) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"offices", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.Office{}).Error }},
		{"property_images", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.PropertyImage{}).Error }},
		{"properties", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.Property{}).Error }},
		{"ward_merges", func() error { return tx.Exec("DELETE FROM ward_merges").Error }},
		{"wards", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.Ward{}).Error }},
		{"old_wards", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.OldWard{}).Error }},
		{"districts", func() error { return tx.Unscoped().Where("1 = 1").Delete(&models.District{}).Error }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// findOrCreateOldWard deduplicates old wards named by several MergedFrom
// lists (one legacy ward can split across several new wards).
func findOrCreateOldWard(tx *gorm.DB, districtID uint, name string) (*models.OldWard, error) {
	var old models.OldWard
	err := tx.Where("district_id = ? AND name = ?", districtID, name).First(&old).Error
	if err == nil {
		return &old, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("old ward %q could not be looked up: %w", name, err)
	}

	old = models.OldWard{DistrictID: districtID, Name: name}
	old.IsActive = true
	if err := tx.Create(&old).Error; err != nil {
		return nil, fmt.Errorf("old ward %q could not be created: %w", name, err)
	}
	return &old, nil
}
