package roblox

// Profile is the public slice of a Roblox account.
type Profile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
}

// Connection is one social link reported by the private
// promotion-channels endpoint, passed through as-is.
type Connection struct {
	Type string `json:"type" example:"twitter"`
	URL  string `json:"url" example:"https://twitter.com/someone"`
}
