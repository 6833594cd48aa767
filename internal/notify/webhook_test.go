package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"robloxscout/internal/bioparse"
	"robloxscout/internal/roblox"
)

func sampleProfile() *roblox.Profile {
	return &roblox.Profile{
		ID:          156,
		Name:        "builderman",
		DisplayName: "Builderman",
		Bio:         "discord: cool_gamer.99 https://example.com/me",
	}
}

func TestWebhookDisabled(t *testing.T) {
	w := NewWebhook("", zap.NewNop())
	assert.False(t, w.Enabled())
	assert.NoError(t, w.Send("anything"))
}

func TestWebhookSend(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := NewWebhook(srv.URL, zap.NewNop())
	require.NoError(t, w.Send("hello"))
	assert.Equal(t, "hello", got.Content)
}

func TestWebhookSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	w := NewWebhook(srv.URL, zap.NewNop())
	assert.Error(t, w.Send("hello"))
}

func TestFormatLookup(t *testing.T) {
	parsed := bioparse.Parse(sampleProfile().Bio)
	conns := []roblox.Connection{{Type: "twitter", URL: "https://twitter.com/someone"}}

	msg := FormatLookup(sampleProfile(), parsed, conns)
	assert.Contains(t, msg, "Builderman (@builderman, id 156)")
	assert.Contains(t, msg, "discord=cool_gamer.99")
	assert.Contains(t, msg, "https://example.com/me")
	assert.Contains(t, msg, "twitter → https://twitter.com/someone")
}

func TestFormatLookupCapsURLs(t *testing.T) {
	parsed := bioparse.Result{Found: []bioparse.Match{}, URLs: []string{}}
	for i := 0; i < 8; i++ {
		parsed.URLs = append(parsed.URLs, fmt.Sprintf("https://example.com/p%d", i))
	}

	msg := FormatLookup(sampleProfile(), parsed, nil)
	assert.Contains(t, msg, "https://example.com/p4")
	assert.NotContains(t, msg, "https://example.com/p5")
	assert.Contains(t, msg, "(+3 more)")
}

func TestFormatLookupCapsConnectionsBlock(t *testing.T) {
	conns := make([]roblox.Connection, 0, 40)
	for i := 0; i < 40; i++ {
		conns = append(conns, roblox.Connection{
			Type: "twitter",
			URL:  fmt.Sprintf("https://twitter.com/very_long_account_name_%02d", i),
		})
	}

	msg := FormatLookup(sampleProfile(), bioparse.Result{}, conns)
	connBlock := msg[strings.Index(msg, "connections:"):]
	assert.LessOrEqual(t, len(connBlock), maxConnectionsChars+len("…"))
	assert.LessOrEqual(t, len(msg), maxContentChars)
}

func TestFormatLookupEmptySections(t *testing.T) {
	msg := FormatLookup(sampleProfile(), bioparse.Result{}, nil)
	assert.Contains(t, msg, "handles: none")
	assert.Contains(t, msg, "urls: none")
	assert.Contains(t, msg, "connections: none")
}
