package repositories

import (
	"testing"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"

	"github.com/glebarez/sqlite"
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

// listingFixture is a small two-district world for listing queries.
//
//	Quận 1:  ward "Phường Sài Gòn", old ward "Phường Bến Nghé"
//	         property "Saigon Tower"  (current ward, grade A, 120m²)
//	         property "Ben Nghe Plaza" (legacy ward only, grade B, 80m²)
//	Quận 7:  ward "Phường Tân Thuận"
//	         property "Tan Thuan Hub" (grade C, 200m²)
//	Quận 12: ward "Phường Đông Hưng" and no properties at all
type listingFixture struct {
	district1 models.District
	district7 models.District
	empty     models.District

	saigonTower  models.Property
	benNghePlaza models.Property
	tanThuanHub  models.Property
}

func seedListingFixture(t *testing.T, db *gorm.DB) listingFixture {
	t.Helper()
	var f listingFixture

	f.district1 = models.District{Name: "Quận 1"}
	f.district7 = models.District{Name: "Quận 7"}
	f.empty = models.District{Name: "Quận 12"}
	require.NoError(t, db.Create(&f.district1).Error)
	require.NoError(t, db.Create(&f.district7).Error)
	require.NoError(t, db.Create(&f.empty).Error)

	saigon := models.Ward{DistrictID: f.district1.ID, Name: "Phường Sài Gòn"}
	tanThuan := models.Ward{DistrictID: f.district7.ID, Name: "Phường Tân Thuận"}
	dongHung := models.Ward{DistrictID: f.empty.ID, Name: "Phường Đông Hưng"}
	require.NoError(t, db.Create(&saigon).Error)
	require.NoError(t, db.Create(&tanThuan).Error)
	require.NoError(t, db.Create(&dongHung).Error)

	benNghe := models.OldWard{DistrictID: f.district1.ID, Name: "Phường Bến Nghé"}
	require.NoError(t, db.Create(&benNghe).Error)

	f.saigonTower = models.Property{
		Name: "Saigon Tower", Slug: "saigon-tower",
		Grade: "A", ListingType: "office",
		FloorArea: 120, PricePerM2: 35,
		WardID: &saigon.ID,
	}
	f.benNghePlaza = models.Property{
		Name: "Ben Nghe Plaza", Slug: "ben-nghe-plaza",
		Grade: "B", ListingType: "office",
		FloorArea: 80, PricePerM2: 22,
		OldWardID: &benNghe.ID,
	}
	f.tanThuanHub = models.Property{
		Name: "Tan Thuan Hub", Slug: "tan-thuan-hub",
		Grade: "C", ListingType: "retail",
		FloorArea: 200, PricePerM2: 14,
	}
	f.tanThuanHub.WardID = &tanThuan.ID
	require.NoError(t, db.Create(&f.saigonTower).Error)
	require.NoError(t, db.Create(&f.benNghePlaza).Error)
	require.NoError(t, db.Create(&f.tanThuanHub).Error)

	return f
}

func defaultListParams() requests.ListParams {
	return requests.ListParams{Page: 1, PerPage: requests.DefaultPerPage}
}
