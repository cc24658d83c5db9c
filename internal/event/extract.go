package event

import (
	"regexp"
	"strings"
)

// Field labels on the source site use either a full-width slash or a half-
// or full-width colon. Values run until the next label, a phone glyph, or a
// parenthesis opening the locality suffix.
var (
	venuePattern     = regexp.MustCompile(`会場[／:：]\s*(.+?)(?:[（(]|主催|連絡|☎|$)`)
	organizerPattern = regexp.MustCompile(`主催[／:：]\s*(.+?)(?:連絡|☎|\n|$)`)
	cityParenPattern = regexp.MustCompile(`[（(]([^（）()]*?[市区町村])`)
	cityLoosePattern = regexp.MustCompile(`([^\s　（）()]+[市区町村])`)
	prefParenPattern = regexp.MustCompile(`（([^（）]*?[都道府県])）`)

	feePatterns = []*regexp.Regexp{
		regexp.MustCompile(`入場無料`),
		regexp.MustCompile(`入場料[：:]\s*[^\s　]+`),
		regexp.MustCompile(`入園料[：:]\s*[^\s　]+`),
		regexp.MustCompile(`無料`),
	}

	salesWords = []string{"即売", "販売", "売店"}
)

// MatchPrefecture returns the prefecture an event belongs to. The region's
// declared prefectures are scanned in order against title and content; a
// parenthesized prefecture name in the title is tried next; failing both,
// the first declared prefecture is returned as the best guess, so every
// event of a non-empty region carries some prefecture.
func MatchPrefecture(title, content string, prefectures []string) string {
	combined := title + " " + content
	for _, p := range prefectures {
		if strings.Contains(combined, p) {
			return p
		}
	}
	if m := prefParenPattern.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	if len(prefectures) > 0 {
		return prefectures[0]
	}
	return ""
}

// MatchVenue returns the text following a 会場 label, up to the first
// parenthesis, follow-on label, or phone glyph.
func MatchVenue(content string) string {
	if m := venuePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// MatchCity returns the municipality mentioned in the given text, usually
// the venue. A parenthesized suffix like （長野市） wins; otherwise any run
// of plain characters ending in 市/区/町/村 is taken.
func MatchCity(text string) string {
	if m := cityParenPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := cityLoosePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// MatchOrganizer returns the text following a 主催 label.
func MatchOrganizer(content string) string {
	if m := organizerPattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// MatchFee returns the admission fee as written: a literal 入場無料/無料, or
// a labeled 入場料/入園料 value including its label. First pattern wins.
func MatchFee(content string) string {
	for _, p := range feePatterns {
		if m := p.FindString(content); m != "" {
			return m
		}
	}
	return ""
}

// HasSalesNotice reports whether the block advertises on-site sales.
func HasSalesNotice(content string) bool {
	for _, w := range salesWords {
		if strings.Contains(content, w) {
			return true
		}
	}
	return false
}
