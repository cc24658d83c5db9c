package event

import "testing"

func TestMatchPrefecture(t *testing.T) {
	kanto := []string{"東京都", "神奈川県", "埼玉県"}

	tests := []struct {
		name        string
		title       string
		content     string
		prefectures []string
		want        string
	}{
		{
			name:        "Direct match in content",
			title:       "春のさつき展",
			content:     "会場／神奈川県立フラワーセンター",
			prefectures: kanto,
			want:        "神奈川県",
		},
		{
			name:        "Direct match in title",
			title:       "東京都盆栽展",
			content:     "",
			prefectures: kanto,
			want:        "東京都",
		},
		{
			name:        "List order wins when several match",
			title:       "埼玉県と東京都の合同展",
			content:     "",
			prefectures: kanto,
			want:        "東京都",
		},
		{
			name:        "Parenthesized prefecture in title",
			title:       "さつき展（栃木県）",
			content:     "会場／文化会館",
			prefectures: kanto,
			want:        "栃木県",
		},
		{
			name:        "Fallback to first declared prefecture",
			title:       "春の山野草展",
			content:     "会場／市民ホール",
			prefectures: []string{"A県", "B県"},
			want:        "A県",
		},
		{
			name:        "Empty prefecture list",
			title:       "春の山野草展",
			content:     "",
			prefectures: nil,
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPrefecture(tt.title, tt.content, tt.prefectures)
			if got != tt.want {
				t.Errorf("MatchPrefecture(%q, %q) = %q, want %q", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestMatchVenue(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Full-width slash label terminated by parenthesis",
			content: "会期／3月7日～8日 会場／長野市民会館（長野市）主催／長野山草会",
			want:    "長野市民会館",
		},
		{
			name:    "Colon label terminated by organizer label",
			content: "会場：グリーンホール 主催：愛好会",
			want:    "グリーンホール",
		},
		{
			name:    "Full-width colon terminated by phone glyph",
			content: "会場：花の文化園☎0721-63-8739",
			want:    "花の文化園",
		},
		{
			name:    "Label at end of text",
			content: "入場無料 会場／中央公民館",
			want:    "中央公民館",
		},
		{
			name:    "No venue label",
			content: "即売コーナーあり 入場無料",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchVenue(tt.content); got != tt.want {
				t.Errorf("MatchVenue(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestMatchCity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Parenthesized city",
			text: "長野市民会館（長野市）",
			want: "長野市",
		},
		{
			name: "Parenthesized ward",
			text: "産業会館（台東区）",
			want: "台東区",
		},
		{
			name: "Loose match inside venue name",
			text: "長野市民会館",
			want: "長野市",
		},
		{
			name: "Loose match for town",
			text: "大子町文化福祉会館",
			want: "大子町",
		},
		{
			name: "No municipality",
			text: "グリーンホール",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCity(tt.text); got != tt.want {
				t.Errorf("MatchCity(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchOrganizer(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Terminated by contact label",
			content: "主催／日本山草会長野支部 連絡／026-123-4567",
			want:    "日本山草会長野支部",
		},
		{
			name:    "Terminated by phone glyph",
			content: "主催：さつき愛好会☎03-1234-5678",
			want:    "さつき愛好会",
		},
		{
			name:    "Label at end of text",
			content: "会場／市民ホール 主催／緑風会",
			want:    "緑風会",
		},
		{
			name:    "No organizer label",
			content: "会場／市民ホール",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchOrganizer(tt.content); got != tt.want {
				t.Errorf("MatchOrganizer(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestMatchFee(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Literal free admission",
			content: "即売あり 入場無料",
			want:    "入場無料",
		},
		{
			name:    "Labeled admission fee keeps the label",
			content: "入場料：500円 主催／愛好会",
			want:    "入場料：500円",
		},
		{
			name:    "Labeled garden fee",
			content: "入園料：300円",
			want:    "入園料：300円",
		},
		{
			name:    "Bare free notice",
			content: "駐車無料",
			want:    "無料",
		},
		{
			name:    "Free admission wins over labeled fee",
			content: "入場無料（入園料：300円が別途必要）",
			want:    "入場無料",
		},
		{
			name:    "No fee information",
			content: "会場／市民ホール",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchFee(tt.content); got != tt.want {
				t.Errorf("MatchFee(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestHasSalesNotice(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "Direct sale corner", content: "即売コーナーあり", want: true},
		{name: "Sales word", content: "苗の販売もございます", want: true},
		{name: "Stall word", content: "売店にて軽食あり", want: true},
		{name: "No sales words", content: "入場無料 会場／市民ホール", want: false},
		{name: "Empty content", content: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSalesNotice(tt.content); got != tt.want {
				t.Errorf("HasSalesNotice(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
