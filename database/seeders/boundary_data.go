package seeders

// Boundary dataset for the 2025 administrative reorganization, limited to
// the areas the site lists properties in. Ward rows reference districts by
// their legacy name; ResolveProvince redirects names absorbed into another
// province before lookup.

// provinceAbsorption redirects legacy district names whose area now belongs
// to a different province/city.
var provinceAbsorption = map[string]string{
	"Thành phố Thuận An":     "Tỉnh Bình Dương",
	"Thành phố Dĩ An":        "Tỉnh Bình Dương",
	"Thành phố Thủ Dầu Một":  "Tỉnh Bình Dương",
	"Thành phố Biên Hòa":     "Tỉnh Đồng Nai",
	"Thành phố Vũng Tàu":     "Tỉnh Bà Rịa - Vũng Tàu",
}

var districtNames = []string{
	"Quận 1",
	"Quận 3",
	"Quận 7",
	"Quận Bình Thạnh",
	"Thành phố Thủ Đức",
	"Tỉnh Bình Dương",
	"Tỉnh Đồng Nai",
	"Tỉnh Bà Rịa - Vũng Tàu",
}

var wardRecords = []WardRecord{
	{
		District:   "Quận 1",
		Ward:       "Phường Sài Gòn",
		MergedFrom: []string{"Phường Bến Nghé", "Phường Đa Kao", "Phường Nguyễn Thái Bình"},
	},
	{
		District:   "Quận 1",
		Ward:       "Phường Bến Thành",
		MergedFrom: []string{"Phường Bến Thành", "Phường Phạm Ngũ Lão", "Phường Nguyễn Thái Bình"},
	},
	{
		District:   "Quận 1",
		Ward:       "Phường Cầu Ông Lãnh",
		MergedFrom: []string{"Phường Cầu Ông Lãnh", "Phường Cô Giang", "Phường Cầu Kho", "Phường Nguyễn Cư Trinh"},
	},
	{
		District:   "Quận 3",
		Ward:       "Phường Xuân Hòa",
		MergedFrom: []string{"Phường Võ Thị Sáu"},
	},
	{
		District:   "Quận 3",
		Ward:       "Phường Nhiêu Lộc",
		MergedFrom: []string{"Phường 9", "Phường 11", "Phường 12", "Phường 14"},
	},
	{
		District:   "Quận 7",
		Ward:       "Phường Tân Thuận",
		MergedFrom: []string{"Phường Tân Thuận Đông", "Phường Tân Thuận Tây", "Phường Bình Thuận"},
	},
	{
		District:   "Quận 7",
		Ward:       "Phường Tân Hưng",
		MergedFrom: []string{"Phường Tân Hưng", "Phường Tân Kiểng", "Phường Tân Quy"},
	},
	{
		District:   "Quận Bình Thạnh",
		Ward:       "Phường Gia Định",
		MergedFrom: []string{"Phường 1", "Phường 2", "Phường 7", "Phường 17"},
	},
	{
		District:   "Thành phố Thủ Đức",
		Ward:       "Phường Hiệp Bình",
		MergedFrom: []string{"Phường Hiệp Bình Chánh", "Phường Hiệp Bình Phước"},
	},
	{
		District:   "Thành phố Thuận An",
		Ward:       "Phường Lái Thiêu",
		MergedFrom: []string{"Phường Lái Thiêu", "Phường Bình Hòa", "Phường Vĩnh Phú"},
	},
	{
		District:   "Thành phố Dĩ An",
		Ward:       "Phường Dĩ An",
		MergedFrom: []string{"Phường Dĩ An", "Phường An Bình", "Phường Đông Hòa"},
	},
	{
		District:   "Thành phố Biên Hòa",
		Ward:       "Phường Trấn Biên",
		MergedFrom: []string{"Phường Quyết Thắng", "Phường Thống Nhất", "Phường Hiệp Hòa"},
	},
}

// Legacy wards that kept their boundaries: present in the old taxonomy but
// with no recorded successor.
var oldWardRecords = []OldWardRecord{
	{District: "Quận 1", Ward: "Phường Tân Định"},
	{District: "Quận 7", Ward: "Phường Phú Mỹ"},
	{District: "Thành phố Thủ Đức", Ward: "Phường Linh Trung"},
}
