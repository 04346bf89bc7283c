package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/gitcard/internal/card"
)

// ErrGithubUnavailable is returned when the GitHub API cannot be reached
// or answers with a non-success status. Callers degrade the affected
// section instead of failing the whole request.
var ErrGithubUnavailable = errors.New("github api unavailable")

// User is the subset of the GitHub user payload the server consumes.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`

	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`
}

// Client wraps the GitHub REST and GraphQL APIs. With an OAuth token the
// rate limit is 5,000 requests/hour instead of 60.
type Client struct {
	http       *resty.Client
	apiBase    string
	graphqlURL string
	log        *zap.SugaredLogger
}

// Option adjusts a Client, mainly so tests can point it at a stub server.
type Option func(*Client)

// WithBaseURL overrides the REST and GraphQL endpoints.
func WithBaseURL(apiBase string) Option {
	return func(c *Client) {
		c.apiBase = apiBase
		c.graphqlURL = apiBase + "/graphql"
	}
}

// NewClient builds a GitHub API client with a 10 second request timeout.
func NewClient(log *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		http:       resty.New().SetTimeout(10 * time.Second),
		apiBase:    "https://api.github.com",
		graphqlURL: "https://api.github.com/graphql",
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github.v3+json")
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// FetchUser loads the authenticated user's profile and, when accessible,
// replaces the public email with the primary one from /user/emails.
func (c *Client) FetchUser(ctx context.Context, token string) (*User, error) {
	var user User
	resp, err := c.request(ctx, token).SetResult(&user).Get(c.apiBase + "/user")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGithubUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrGithubUnavailable, resp.StatusCode())
	}

	var emails []struct {
		Email   string `json:"email"`
		Primary bool   `json:"primary"`
	}
	emailResp, err := c.request(ctx, token).SetResult(&emails).Get(c.apiBase + "/user/emails")
	if err == nil && emailResp.IsSuccess() {
		for _, entry := range emails {
			if entry.Primary {
				user.Email = entry.Email
				break
			}
		}
	}

	return &user, nil
}

// Stats aggregates the public numbers shown on a card's stats section.
type Stats struct {
	Repositories  int  `json:"repositories"`
	Stars         int  `json:"stars"`
	Followers     int  `json:"followers"`
	Following     int  `json:"following"`
	Contributions *int `json:"contributions"`
}

// FetchStats collects repository, star, follower and following counts for
// a login. The star total walks every repository page; the contribution
// count needs a token (GraphQL) and stays nil without one.
func (c *Client) FetchStats(ctx context.Context, login, token string) (*Stats, error) {
	var user User
	resp, err := c.request(ctx, token).SetResult(&user).Get(c.apiBase + "/users/" + login)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGithubUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrGithubUnavailable, resp.StatusCode())
	}

	stats := &Stats{
		Repositories: user.PublicRepos,
		Followers:    user.Followers,
		Following:    user.Following,
	}

	stats.Stars = c.countStars(ctx, login, token)

	if token != "" {
		if contributions, err := c.fetchContributions(ctx, login, token); err == nil {
			stats.Contributions = &contributions
		} else {
			c.log.Debugw("contribution fetch failed", "login", login, "err", err)
		}
	}

	return stats, nil
}

type repoPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Fork            bool   `json:"fork"`
}

const reposPerPage = 100

// countStars sums stargazers over every repository page. A failed page
// ends the walk with the stars counted so far; stats stay best-effort.
func (c *Client) countStars(ctx context.Context, login, token string) int {
	total := 0
	for page := 1; ; page++ {
		var repos []repoPayload
		resp, err := c.request(ctx, token).
			SetResult(&repos).
			SetQueryParams(map[string]string{
				"per_page": fmt.Sprintf("%d", reposPerPage),
				"page":     fmt.Sprintf("%d", page),
				"sort":     "updated",
			}).
			Get(c.apiBase + "/users/" + login + "/repos")
		if err != nil || resp.IsError() || len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			total += repo.StargazersCount
		}

		if len(repos) < reposPerPage {
			break
		}
	}
	return total
}

// FetchRepositories lists the authenticated user's most recently updated
// repositories, capped at max.
func (c *Client) FetchRepositories(ctx context.Context, token string, max int) ([]card.RepositorySummary, error) {
	if max <= 0 || max > reposPerPage {
		max = reposPerPage
	}

	var repos []repoPayload
	resp, err := c.request(ctx, token).
		SetResult(&repos).
		SetQueryParams(map[string]string{
			"per_page": fmt.Sprintf("%d", max),
			"sort":     "updated",
		}).
		Get(c.apiBase + "/user/repos")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGithubUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrGithubUnavailable, resp.StatusCode())
	}

	summaries := make([]card.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, card.RepositorySummary{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Language:    repo.Language,
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
		})
	}
	return summaries, nil
}

const contributionsQuery = `query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      totalCommitContributions
      totalIssueContributions
      totalPullRequestContributions
      totalPullRequestReviewContributions
    }
  }
}`

func (c *Client) fetchContributions(ctx context.Context, login, token string) (int, error) {
	var result struct {
		Data struct {
			User struct {
				ContributionsCollection struct {
					TotalCommitContributions            int `json:"totalCommitContributions"`
					TotalIssueContributions             int `json:"totalIssueContributions"`
					TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
					TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
				} `json:"contributionsCollection"`
			} `json:"user"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"query":     contributionsQuery,
			"variables": map[string]string{"username": login},
		}).
		SetResult(&result).
		Post(c.graphqlURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrGithubUnavailable, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("%w: status %d", ErrGithubUnavailable, resp.StatusCode())
	}
	if len(result.Errors) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrGithubUnavailable, result.Errors[0].Message)
	}

	collection := result.Data.User.ContributionsCollection
	return collection.TotalCommitContributions +
		collection.TotalIssueContributions +
		collection.TotalPullRequestContributions +
		collection.TotalPullRequestReviewContributions, nil
}
