package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUsernameRequired is returned when no username is given or configured.
	ErrUsernameRequired = errors.New("github username is required")
	// ErrUserNotFound is returned when GitHub has no such user.
	ErrUserNotFound = errors.New("github user not found")
	// ErrUpstream is returned when GitHub answers with an unexpected status.
	ErrUpstream = errors.New("github upstream error")
)

// Card is the GitHub profile card shown in the sidebar.
type Card struct {
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	ProfileURL  string    `json:"profile_url"`
	Handle      string    `json:"handle"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// HandleFor renders a profile URL as "@github.com/user".
func HandleFor(profileURL string) string {
	if profileURL == "" {
		return ""
	}
	h := strings.TrimPrefix(profileURL, "https://")
	h = strings.TrimPrefix(h, "http://")
	return "@" + h
}

// DisplayName falls back to the login when the user has no name set.
func (c *Card) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Username
}

// NormalizeUsername trims and lowercases a login for lookups and cache keys.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
