package seeders

import (
	"testing"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logconfig.InitLogger()
	m.Run()
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, databaseconfig.AutoMigrate(db))
	return db
}

func TestResolveProvinceMapsAbsorbedDistricts(t *testing.T) {
	assert.Equal(t, "Tỉnh Bình Dương", ResolveProvince("Thành phố Thuận An"))
	assert.Equal(t, "Quận 1", ResolveProvince("Quận 1"))
}

func TestSeedAttachesWardThroughAbsorbedDistrict(t *testing.T) {
	db := setupTestDB(t)

	districts := []string{"Tỉnh Bình Dương"}
	wards := []WardRecord{
		{District: "Thành phố Thuận An", Ward: "Phường Lái Thiêu", MergedFrom: []string{"Phường An Thạnh"}},
	}
	require.NoError(t, SeedBoundary(db, districts, wards, nil))

	var ward models.Ward
	require.NoError(t, db.Preload("MergedFrom").Where("name = ?", "Phường Lái Thiêu").First(&ward).Error)

	var district models.District
	require.NoError(t, db.First(&district, ward.DistrictID).Error)
	assert.Equal(t, "Tỉnh Bình Dương", district.Name)

	require.Len(t, ward.MergedFrom, 1)
	assert.Equal(t, "Phường An Thạnh", ward.MergedFrom[0].Name)
}

func TestSeedSkipsRowsWithUnknownDistrict(t *testing.T) {
	db := setupTestDB(t)

	districts := []string{"Quận 1"}
	wards := []WardRecord{
		{District: "Quận 1", Ward: "Phường Sài Gòn"},
		{District: "Huyện Không Tồn Tại", Ward: "Phường Mồ Côi"},
	}
	require.NoError(t, SeedBoundary(db, districts, wards, nil))

	var count int64
	require.NoError(t, db.Model(&models.Ward{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedDeduplicatesSharedOldWard(t *testing.T) {
	db := setupTestDB(t)

	districts := []string{"Quận 1"}
	wards := []WardRecord{
		{District: "Quận 1", Ward: "Phường Sài Gòn", MergedFrom: []string{"Phường Nguyễn Thái Bình", "Phường Bến Nghé"}},
		{District: "Quận 1", Ward: "Phường Bến Thành", MergedFrom: []string{"Phường Nguyễn Thái Bình", "Phường Phạm Ngũ Lão"}},
	}
	require.NoError(t, SeedBoundary(db, districts, wards, nil))

	// One legacy ward split across two new wards stays one row with two edges.
	var old models.OldWard
	require.NoError(t, db.Preload("SplitInto").Where("name = ?", "Phường Nguyễn Thái Bình").First(&old).Error)
	assert.Len(t, old.SplitInto, 2)

	var count int64
	require.NoError(t, db.Model(&models.OldWard{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestSeedRecordsSuccessorlessOldWards(t *testing.T) {
	db := setupTestDB(t)

	districts := []string{"Quận 1"}
	oldWards := []OldWardRecord{{District: "Quận 1", Ward: "Phường Tân Định"}}
	require.NoError(t, SeedBoundary(db, districts, nil, oldWards))

	var old models.OldWard
	require.NoError(t, db.Preload("SplitInto").Where("name = ?", "Phường Tân Định").First(&old).Error)
	assert.Empty(t, old.SplitInto)
}

func TestSeedIsDestructiveAndIdempotent(t *testing.T) {
	db := setupTestDB(t)

	districts := []string{"Quận 1"}
	wards := []WardRecord{
		{District: "Quận 1", Ward: "Phường Sài Gòn", MergedFrom: []string{"Phường Bến Nghé"}},
	}
	require.NoError(t, SeedBoundary(db, districts, wards, nil))

	// A property hanging off the hierarchy is swept by the re-seed.
	var ward models.Ward
	require.NoError(t, db.First(&ward).Error)
	prop := models.Property{Name: "Tòa nhà cũ", Slug: "toa-nha-cu", WardID: &ward.ID}
	require.NoError(t, db.Create(&prop).Error)

	require.NoError(t, SeedBoundary(db, districts, wards, nil))

	countOf := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(1), countOf(&models.District{}))
	assert.Equal(t, int64(1), countOf(&models.Ward{}))
	assert.Equal(t, int64(1), countOf(&models.OldWard{}))
	assert.Equal(t, int64(0), countOf(&models.Property{}))
}
