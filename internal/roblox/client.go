/**
* Name: 			client.go
* Description: 		Roblox Users / AccountInformation API 클라이언트
* Workflow: 		username 해석, 공개 프로필 조회, 비공개 connections 조회
 */
package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultUsersBaseURL   = "https://users.roblox.com"
	defaultAccountBaseURL = "https://accountinformation.roblox.com"

	// Roblox blocks default Go user agents on some edges.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
)

var (
	// ErrUserNotFound means the username or id does not resolve to an account.
	ErrUserNotFound = errors.New("roblox user not found")
	// ErrNoSession means no .ROBLOSECURITY cookie was configured.
	ErrNoSession = errors.New("no session cookie configured")
)

// Client talks to the Roblox web APIs.
type Client struct {
	UsersBaseURL   string
	AccountBaseURL string

	// HTTPClient serves the public users API.
	HTTPClient *http.Client
	// ConnClient serves the private promotion-channels call and carries
	// the configured fixed timeout.
	ConnClient *http.Client

	// Cookie is the raw .ROBLOSECURITY value. May be empty, in which case
	// Connections always fails with ErrNoSession.
	Cookie string

	logger *zap.Logger
}

// NewClient builds a Client with the production base URLs.
func NewClient(cookie string, connTimeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		UsersBaseURL:   defaultUsersBaseURL,
		AccountBaseURL: defaultAccountBaseURL,
		HTTPClient:     &http.Client{},
		ConnClient:     &http.Client{Timeout: connTimeout},
		Cookie:         cookie,
		logger:         logger,
	}
}

type resolveRequest struct {
	Usernames          []string `json:"usernames"`
	ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
}

type resolveResponse struct {
	Data []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// ResolveUsername maps a username to its numeric user ID.
func (c *Client) ResolveUsername(ctx context.Context, username string) (int64, error) {
	reqBody, err := json.Marshal(resolveRequest{
		Usernames:          []string{username},
		ExcludeBannedUsers: false,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.UsersBaseURL+"/v1/usernames/users", bytes.NewBuffer(reqBody))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("username resolve failed with status: %s", resp.Status)
	}

	var resolved resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&resolved); err != nil {
		return 0, err
	}
	if len(resolved.Data) == 0 {
		return 0, ErrUserNotFound
	}
	return resolved.Data[0].ID, nil
}

type userResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// Profile fetches the public profile (name, display name, bio) for a user ID.
func (c *Client) Profile(ctx context.Context, userID int64) (*Profile, error) {
	url := fmt.Sprintf("%s/v1/users/%d", c.UsersBaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch failed with status: %s", resp.Status)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &Profile{
		ID:          user.ID,
		Name:        user.Name,
		DisplayName: user.DisplayName,
		Bio:         user.Description,
	}, nil
}

// promotion-channels 응답은 플랫폼별 필드를 가진 단일 객체
type promotionChannelsResponse struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	YouTube  string `json:"youtube"`
	Twitch   string `json:"twitch"`
	Guilded  string `json:"guilded"`
}

// Connections fetches the account's promotion channels using the session
// cookie. Callers are expected to treat any error as "no connections";
// 401/403/429 and malformed responses are not distinguished.
func (c *Client) Connections(ctx context.Context, userID int64) ([]Connection, error) {
	if c.Cookie == "" {
		return nil, ErrNoSession
	}

	url := fmt.Sprintf("%s/v1/users/%d/promotion-channels", c.AccountBaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: ".ROBLOSECURITY", Value: c.Cookie})

	resp, err := c.ConnClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("connections fetch failed with status: %s", resp.Status)
	}

	var channels promotionChannelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&channels); err != nil {
		return nil, err
	}

	conns := []Connection{}
	for _, entry := range []Connection{
		{Type: "facebook", URL: channels.Facebook},
		{Type: "twitter", URL: channels.Twitter},
		{Type: "youtube", URL: channels.YouTube},
		{Type: "twitch", URL: channels.Twitch},
		{Type: "guilded", URL: channels.Guilded},
	} {
		if entry.URL == "" {
			continue
		}
		conns = append(conns, entry)
	}

	c.logger.Debug("fetched promotion channels",
		zap.Int64("user_id", userID), zap.Int("count", len(conns)))
	return conns, nil
}
