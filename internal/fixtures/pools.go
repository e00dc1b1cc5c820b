package fixtures

// Name pools per configured language flag. The flag is cosmetic; it only
// changes which pool the generator draws from.

var companyPools = map[string][]string{
	"en": {
		"Acme Logistics", "Bluewater Foods", "Cedarline Retail", "Driftwood Hotels",
		"Eastgate Clinics", "Fernhill Media", "Grandview Dental", "Harborlight Gym",
		"Ironwood Motors", "Juniper Bakery", "Kestrel Couriers", "Lakeshore Optics",
		"Maplestone Realty", "Northwind Cafe", "Oakfield Pharmacy", "Pinecrest Labs",
		"Quarry Outfitters", "Riverbend Garage", "Stonebridge Law", "Tidewater Marine",
		"Umberview Studios", "Vantage Print", "Westerly Florists", "Yardarm Brewing",
		"Zephyr Cleaners",
	},
	"ja": {
		"青山商事", "港北物流", "桜井食品", "東雲ホテル", "若葉クリニック",
		"緑川メディア", "白石デンタル", "大森ジム", "黒田モータース", "小川ベーカリー",
		"高梨運送", "湖畔光学", "松本不動産", "北風カフェ", "大槻薬局",
		"松陰ラボ", "石切アウトドア", "川辺ガレージ", "橋本法律事務所", "潮見マリン",
	},
}

var personPools = map[string][]string{
	"en": {
		"Ava Brooks", "Noah Hale", "Mia Turner", "Liam Foster", "Zoe Bennett",
		"Eli Hart", "Ivy Coleman", "Max Reeves", "Lena Ward", "Owen Blake",
		"Nora Pierce", "Jude Lang", "Tess Monroe", "Finn Archer", "Ruby Vance",
	},
	"ja": {
		"佐藤 美咲", "鈴木 大輔", "田中 葵", "高橋 健太", "伊藤 さくら",
		"渡辺 翔", "山本 陽菜", "中村 蓮", "小林 結衣", "加藤 悠真",
	},
}

var deviceTypes = []string{
	"Gateway", "Sensor", "Camera", "Controller", "Display",
}

var firmwareVersions = []string{
	"1.8.2", "2.0.1", "2.1.0", "2.3.4", "3.0.0-rc1",
}

func pool(pools map[string][]string, language string) []string {
	if p, ok := pools[language]; ok {
		return p
	}
	return pools["en"]
}
