// Package region holds the static registry of regional listing pages the
// scraper walks. Each region carries the prefectures whose events appear on
// its page.
package region

// Site is the fixed origin of the announcement site. Detail-page permalinks
// in listing blocks are relative to it.
const Site = "https://www.engei-navi.jp"

// Region is one scrape source: a regional listing page and the prefectures
// it covers.
type Region struct {
	Name        string
	URL         string
	Prefectures []string
}

var regions = []Region{
	{Name: "北海道", URL: Site + "/event/hokkaido/", Prefectures: []string{"北海道"}},
	{Name: "東北", URL: Site + "/event/tohoku/", Prefectures: []string{"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県"}},
	{Name: "関東", URL: Site + "/event/kanto/", Prefectures: []string{"東京都", "神奈川県", "埼玉県", "千葉県", "茨城県", "栃木県", "群馬県", "山梨県"}},
	{Name: "信越", URL: Site + "/event/shinetsu/", Prefectures: []string{"新潟県", "長野県"}},
	{Name: "北陸", URL: Site + "/event/hokuriku/", Prefectures: []string{"富山県", "石川県", "福井県"}},
	{Name: "東海", URL: Site + "/event/tokai/", Prefectures: []string{"愛知県", "岐阜県", "静岡県", "三重県"}},
	{Name: "近畿", URL: Site + "/event/kinki/", Prefectures: []string{"大阪府", "兵庫県", "京都府", "滋賀県", "奈良県", "和歌山県"}},
	{Name: "中国", URL: Site + "/event/chugoku/", Prefectures: []string{"鳥取県", "島根県", "岡山県", "広島県", "山口県"}},
	{Name: "四国", URL: Site + "/event/shikoku/", Prefectures: []string{"徳島県", "香川県", "愛媛県", "高知県"}},
	{Name: "九州", URL: Site + "/event/kyushu/", Prefectures: []string{"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県"}},
}

// All returns the full registry in scrape order. Callers must not mutate
// the returned slice.
func All() []Region {
	return regions
}

// Find returns the region with the given name.
func Find(name string) (Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
