/**
* Name: 			lookup.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		identity 해석 → 프로필 조회 → bio 파싱 → connections 조회 → webhook 알림
 */
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"robloxscout/internal/bioparse"
	"robloxscout/internal/notify"
	"robloxscout/internal/roblox"
)

// /lookup 요청 파라미터 (query 또는 POST body)
type LookupRequest struct {
	Username    string `json:"username" form:"username" example:"builderman"`
	UserID      int64  `json:"userId" form:"userId" example:"156"`
	RolimonsURL string `json:"rolimonsUrl" form:"rolimonsUrl" example:"https://www.rolimons.com/player/156"`
}

type LookupResponse struct {
	UserID      int64               `json:"userId" example:"156"`
	Username    string              `json:"username" example:"builderman"`
	DisplayName string              `json:"displayName" example:"Builderman"`
	Bio         string              `json:"bio"`
	Parsed      bioparse.Result     `json:"parsed"`
	Connections []roblox.Connection `json:"connections"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"username, userId or rolimonsUrl required"`
}

type LookupHandler struct {
	roblox  *roblox.Client
	webhook *notify.Webhook
	logger  *zap.Logger
}

func NewLookupHandler(client *roblox.Client, webhook *notify.Webhook, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		roblox:  client,
		webhook: webhook,
		logger:  logger,
	}
}

// Lookup godoc
// @Summary      Roblox 프로필 조회 (Lookup)
// @Description  Resolves a username, user ID, or profile URL, fetches the public profile,
// @Description  extracts social handles and URLs from the bio, attaches any private
// @Description  connections, and pushes a summary to the configured webhook.
// @Tags         Lookup
// @Accept       json
// @Produce      json
// @Param        username    query string false "Roblox username"
// @Param        userId      query int    false "Roblox user ID"
// @Param        rolimonsUrl query string false "Rolimons or Roblox profile URL"
// @Success      200 {object} handler.LookupResponse
// @Failure      400 {object} handler.ErrorResponse "Missing or invalid identifier"
// @Failure      404 {object} handler.ErrorResponse "User not found"
// @Failure      429 {object} handler.ErrorResponse "Too many requests"
// @Failure      502 {object} handler.ErrorResponse "Upstream API failure"
// @Router       /api/lookup [get]
// @Router       /api/lookup [post]
func (h *LookupHandler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	// POST body 파라미터 지원 (query 파라미터가 우선)
	if c.Request.Method == http.MethodPost && req.Username == "" && req.UserID == 0 && req.RolimonsURL == "" {
		rawData, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if len(rawData) > 0 {
			if err := json.Unmarshal(rawData, &req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "JSON parsing error: " + err.Error()})
				return
			}
		}
	}

	if req.RolimonsURL != "" {
		id, username, err := roblox.ExtractIdentity(req.RolimonsURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract a user from the given URL"})
			return
		}
		if id != 0 {
			req.UserID = id
		} else {
			req.Username = username
		}
	}

	if req.UserID == 0 && req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, userId or rolimonsUrl required"})
		return
	}

	ctx := c.Request.Context()

	if req.UserID == 0 {
		id, err := h.roblox.ResolveUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, roblox.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			h.logger.Error("username resolve failed", zap.String("username", req.Username), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve username"})
			return
		}
		req.UserID = id
	}

	profile, err := h.roblox.Profile(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, roblox.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("profile fetch failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch profile"})
		return
	}

	parsed := bioparse.Parse(profile.Bio)

	// connections 실패는 요청 실패로 취급하지 않음
	conns, err := h.roblox.Connections(ctx, profile.ID)
	if err != nil {
		h.logger.Warn("connections fetch failed, continuing without",
			zap.Int64("user_id", profile.ID),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		conns = []roblox.Connection{}
	}

	h.webhook.NotifyLookup(profile, parsed, conns)

	c.JSON(http.StatusOK, LookupResponse{
		UserID:      profile.ID,
		Username:    profile.Name,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		Parsed:      parsed,
		Connections: conns,
	})
}
