package bioparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyBio(t *testing.T) {
	for _, bio := range []string{"", "   ", "\n\t"} {
		result := Parse(bio)
		assert.Empty(t, result.Found)
		assert.Empty(t, result.URLs)
	}
}

func TestParsePlatformHandles(t *testing.T) {
	cases := []struct {
		platform string
		bio      string
		handle   string
	}{
		{"discord", "add me on discord: cool_gamer.99", "cool_gamer.99"},
		{"discord", "Disc - shadowfox", "shadowfox"},
		{"instagram", "insta @my.pics", "my.pics"},
		{"instagram", "IG: photo_person", "photo_person"},
		{"tiktok", "tiktok: dancer_01", "dancer_01"},
		{"twitter", "twitter @bird_fan", "bird_fan"},
		{"facebook", "fb: some.profile", "some.profile"},
		{"snapchat", "snap: ghost-user", "ghost-user"},
		{"youtube", "youtube: MyChannel", "MyChannel"},
		{"youtube", "yt = VideoGuy", "VideoGuy"},
	}

	for _, tc := range cases {
		t.Run(tc.platform+"/"+tc.bio, func(t *testing.T) {
			result := Parse(tc.bio)
			require.Len(t, result.Found, 1, "expected exactly one match")
			assert.Equal(t, tc.platform, result.Found[0].Platform)
			assert.Equal(t, tc.handle, result.Found[0].Handle)
		})
	}
}

func TestParseKeepsFirstMentionPerPlatform(t *testing.T) {
	result := Parse("discord: first_one ... discord: second_one")
	require.Len(t, result.Found, 1)
	assert.Equal(t, "first_one", result.Found[0].Handle)
}

func TestParseMultiplePlatforms(t *testing.T) {
	result := Parse("discord: gamer_tag | insta @pics.daily | snap: ghosty22")
	require.Len(t, result.Found, 3)
	assert.Equal(t, "discord", result.Found[0].Platform)
	assert.Equal(t, "instagram", result.Found[1].Platform)
	assert.Equal(t, "snapchat", result.Found[2].Platform)
}

func TestParseCaseInsensitive(t *testing.T) {
	result := Parse("DISCORD: LoudUser")
	require.Len(t, result.Found, 1)
	assert.Equal(t, "discord", result.Found[0].Platform)
	assert.Equal(t, "LoudUser", result.Found[0].Handle)
}

func TestParseKeywordWithoutHandle(t *testing.T) {
	result := Parse("discord:")
	assert.Empty(t, result.Found)
}

func TestParseURLs(t *testing.T) {
	result := Parse("my site https://example.com/me and store http://shop.example.com/items")
	require.Len(t, result.URLs, 2)
	assert.Equal(t, "https://example.com/me", result.URLs[0])
	assert.Equal(t, "http://shop.example.com/items", result.URLs[1])
}

func TestParseURLDedupCaseInsensitive(t *testing.T) {
	result := Parse("see https://Example.com/Me or https://example.com/me and https://other.io/page")
	require.Len(t, result.URLs, 2)
	assert.Equal(t, "https://Example.com/Me", result.URLs[0], "first occurrence wins, original case kept")
	assert.Equal(t, "https://other.io/page", result.URLs[1])
}

func TestParseURLStopsAtClosingParen(t *testing.T) {
	result := Parse("(my page: https://example.com/page) end")
	require.Len(t, result.URLs, 1)
	assert.Equal(t, "https://example.com/page", result.URLs[0])
}

func TestParseNoCrossPlatformMatch(t *testing.T) {
	result := Parse("discord: lonely_user")
	require.Len(t, result.Found, 1)
	assert.Equal(t, "discord", result.Found[0].Platform)
}
