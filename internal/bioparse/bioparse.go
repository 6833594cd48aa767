/* 프로필 bio 텍스트에서 소셜 핸들과 URL을 추출하는 패키지 */

package bioparse

import (
	"regexp"
	"strings"
)

// Match is a single platform mention found in bio text.
type Match struct {
	Platform string `json:"platform" example:"discord"`
	Handle   string `json:"handle" example:"cool_gamer.99"`
}

// Result holds everything extracted from one bio.
type Result struct {
	Found []Match  `json:"found"`
	URLs  []string `json:"urls"`
}

// Fixed platform list, checked in this order. Aliases cover the short forms
// people actually write in bios ("ig", "snap", "yt" ...).
var platforms = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"discord", handlePattern("discord|disc")},
	{"instagram", handlePattern("instagram|insta|ig")},
	{"tiktok", handlePattern("tiktok|tt")},
	{"twitter", handlePattern("twitter|twt|x")},
	{"facebook", handlePattern("facebook|fb")},
	{"snapchat", handlePattern("snapchat|snap|sc")},
	{"youtube", handlePattern("youtube|yt")},
}

// Handles are letters, digits and a little punctuation, 2-32 chars. No check
// that the handle actually exists anywhere.
func handlePattern(aliases string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + aliases + `)\b\s*[:=>-]?\s*@?([A-Za-z0-9._-]{2,32})`)
}

var urlPattern = regexp.MustCompile(`(?i)https?://[^\s)]+`)

// Parse scans bio text for platform handle mentions and URLs.
// Only the first mention per platform is kept. URLs are deduplicated
// case-insensitively, first occurrence wins, order preserved.
func Parse(bio string) Result {
	result := Result{
		Found: []Match{},
		URLs:  []string{},
	}
	if strings.TrimSpace(bio) == "" {
		return result
	}

	for _, p := range platforms {
		m := p.pattern.FindStringSubmatch(bio)
		if m == nil {
			continue
		}
		result.Found = append(result.Found, Match{Platform: p.name, Handle: m[1]})
	}

	seen := make(map[string]bool)
	for _, u := range urlPattern.FindAllString(bio, -1) {
		key := strings.ToLower(u)
		if seen[key] {
			continue
		}
		seen[key] = true
		result.URLs = append(result.URLs, u)
	}

	return result
}
