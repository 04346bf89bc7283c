package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// OAuth endpoints. The authorize URL is where the browser gets redirected;
// the token exchange happens server-side so the client secret never
// reaches the frontend.
const (
	authorizeURL    = "https://github.com/login/oauth/authorize"
	defaultTokenURL = "https://github.com/login/oauth/access_token"
)

// ErrOAuthExchange is returned when GitHub rejects the code-for-token
// exchange.
var ErrOAuthExchange = errors.New("github oauth exchange failed")

// OAuthConfig carries the OAuth app credentials.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// TokenURL overrides the exchange endpoint in tests.
	TokenURL string
}

// AuthorizeURL builds the GitHub authorization URL for the login redirect.
// The state value is validated on callback for CSRF protection.
func (o OAuthConfig) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", o.ClientID)
	params.Set("redirect_uri", o.RedirectURI)
	params.Set("scope", "read:user user:email")
	params.Set("state", state)
	return authorizeURL + "?" + params.Encode()
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, cfg OAuthConfig, code string) (string, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	var result struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"client_id":     cfg.ClientID,
			"client_secret": cfg.ClientSecret,
			"code":          code,
			"redirect_uri":  cfg.RedirectURI,
		}).
		SetResult(&result).
		Post(tokenURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	if resp.IsError() || result.AccessToken == "" {
		return "", fmt.Errorf("%w: status %d %s", ErrOAuthExchange, resp.StatusCode(), result.Error)
	}

	return result.AccessToken, nil
}
