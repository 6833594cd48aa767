package roblox

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrNoIdentity means the URL had no recognizable player segment.
var ErrNoIdentity = errors.New("no user id or username found in url")

// Rolimons uses /player/<id>, Roblox itself uses /users/<id>/profile.
var profilePathPattern = regexp.MustCompile(`(?i)/(?:player|users)/([A-Za-z0-9_]+)`)

// ExtractIdentity pulls a user ID or a username out of a Rolimons or Roblox
// profile URL. A numeric segment after the path marker is a user ID,
// anything else is treated as a username.
func ExtractIdentity(rawURL string) (userID int64, username string, err error) {
	m := profilePathPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, "", ErrNoIdentity
	}

	if id, convErr := strconv.ParseInt(m[1], 10, 64); convErr == nil {
		return id, "", nil
	}
	return 0, m[1], nil
}
