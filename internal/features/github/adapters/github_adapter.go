package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/httpclient"
	"portfolio-site/internal/core/proxy"
	"portfolio-site/internal/features/github/domain"

	"github.com/jonboulle/clockwork"
)

// GitHubAdapter implements ports.CardProvider using the GitHub REST API.
type GitHubAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the API base URL and token.
	config config.GitHubConfig
	clock  clockwork.Clock
}

// NewGitHubAdapter creates a new instance of GitHubAdapter.
func NewGitHubAdapter(cfg config.GitHubConfig, proxySettings proxy.Settings) *GitHubAdapter {
	return &GitHubAdapter{
		client: httpclient.NewClient(cfg.Timeout(), proxySettings),
		config: cfg,
		clock:  clockwork.NewRealClock(),
	}
}

// GetCard fetches a user from GitHub and maps it to a Card.
func (a *GitHubAdapter) GetCard(ctx context.Context, username string) (*domain.Card, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}

	endpoint := fmt.Sprintf("%s/users/%s", strings.TrimRight(a.config.APIURL, "/"), url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if a.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.Token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrUpstream, err)
	}

	return a.mapToDomain(user), nil
}

// mapToDomain falls back to the login when the account has no display name.
func (a *GitHubAdapter) mapToDomain(u githubUser) *domain.Card {
	card := &domain.Card{
		Username:    u.Login,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		ProfileURL:  u.HTMLURL,
		Handle:      domain.HandleFor(u.HTMLURL),
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		FetchedAt:   a.clock.Now().UTC(),
	}
	card.Name = card.DisplayName()
	return card
}

// githubUser is the subset of GET /users/{username} the card needs.
type githubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}
