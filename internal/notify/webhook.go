/**
* Name: 			webhook.go
* Description: 		Discord webhook 알림 전송
* Workflow: 		조회 결과 요약 포맷 → webhook POST (실패해도 요청은 계속)
 */
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"robloxscout/internal/bioparse"
	"robloxscout/internal/roblox"
)

const (
	maxMessageURLs      = 5
	maxConnectionsChars = 600
	maxContentChars     = 2000 // Discord content hard limit
)

// Webhook posts lookup summaries to a Discord-style webhook URL.
// A Webhook with an empty URL is disabled and every send is a no-op.
type Webhook struct {
	URL    string
	Client *http.Client

	logger *zap.Logger
}

func NewWebhook(url string, logger *zap.Logger) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Enabled reports whether a webhook URL is configured.
func (w *Webhook) Enabled() bool {
	return w.URL != ""
}

// NotifyLookup formats and sends one lookup summary. Errors are logged and
// dropped; a failed notification never fails the lookup itself.
func (w *Webhook) NotifyLookup(profile *roblox.Profile, parsed bioparse.Result, conns []roblox.Connection) {
	if !w.Enabled() {
		return
	}
	if err := w.Send(FormatLookup(profile, parsed, conns)); err != nil {
		w.logger.Warn("webhook send failed", zap.Error(err))
	}
}

// FormatLookup renders the summary message: identity, bio length, parsed
// handles, parsed URLs (capped), and raw connections (capped).
func FormatLookup(profile *roblox.Profile, parsed bioparse.Result, conns []roblox.Connection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Roblox lookup** — %s (@%s, id %d)\n", profile.DisplayName, profile.Name, profile.ID)
	fmt.Fprintf(&b, "bio: %d chars\n", len(profile.Bio))

	if len(parsed.Found) == 0 {
		b.WriteString("handles: none\n")
	} else {
		parts := make([]string, 0, len(parsed.Found))
		for _, m := range parsed.Found {
			parts = append(parts, m.Platform+"="+m.Handle)
		}
		fmt.Fprintf(&b, "handles: %s\n", strings.Join(parts, ", "))
	}

	if len(parsed.URLs) == 0 {
		b.WriteString("urls: none\n")
	} else {
		shown := parsed.URLs
		if len(shown) > maxMessageURLs {
			shown = shown[:maxMessageURLs]
		}
		fmt.Fprintf(&b, "urls: %s", strings.Join(shown, ", "))
		if extra := len(parsed.URLs) - len(shown); extra > 0 {
			fmt.Fprintf(&b, " (+%d more)", extra)
		}
		b.WriteString("\n")
	}

	if len(conns) == 0 {
		b.WriteString("connections: none")
	} else {
		var cb strings.Builder
		cb.WriteString("connections:")
		for _, conn := range conns {
			cb.WriteString(fmt.Sprintf("\n  %s → %s", conn.Type, conn.URL))
		}
		block := cb.String()
		if len(block) > maxConnectionsChars {
			block = block[:maxConnectionsChars] + "…"
		}
		b.WriteString(block)
	}

	content := b.String()
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}
	return content
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Send posts a single content message to the webhook.
func (w *Webhook) Send(content string) error {
	if !w.Enabled() {
		return nil
	}

	reqBody, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return err
	}

	resp, err := w.Client.Post(w.URL, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook rejected message with status: %s", resp.Status)
	}
	return nil
}
