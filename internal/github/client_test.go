package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newStubClient(t *testing.T, handler http.Handler) (*Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewClient(zap.NewNop().Sugar(), WithBaseURL(server.URL))
	return client, server.Close
}

// writeJSON mirrors the real API: without the content type the response
// body is not unmarshalled into the result struct.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.Encode(v)
}

func TestFetchStatsAggregates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/jane", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"public_repos": 12,
			"followers":    34,
			"following":    5,
		})
	})
	mux.HandleFunc("/users/jane/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			writeJSON(w, []any{})
			return
		}
		writeJSON(w, []map[string]any{
			{"name": "a", "stargazers_count": 10},
			{"name": "b", "stargazers_count": 7},
		})
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"data": map[string]any{
				"user": map[string]any{
					"contributionsCollection": map[string]any{
						"totalCommitContributions":            100,
						"totalIssueContributions":             10,
						"totalPullRequestContributions":       5,
						"totalPullRequestReviewContributions": 2,
					},
				},
			},
		})
	})

	client, closeServer := newStubClient(t, mux)
	defer closeServer()

	stats, err := client.FetchStats(context.Background(), "jane", "token")
	if err != nil {
		t.Fatalf("fetch stats failed: %v", err)
	}

	if stats.Repositories != 12 || stats.Followers != 34 || stats.Following != 5 {
		t.Fatalf("unexpected user numbers: %#v", stats)
	}
	if stats.Stars != 17 {
		t.Fatalf("expected 17 stars, got %d", stats.Stars)
	}
	if stats.Contributions == nil || *stats.Contributions != 117 {
		t.Fatalf("expected 117 contributions, got %v", stats.Contributions)
	}
}

func TestFetchStatsWithoutTokenSkipsContributions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/jane", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"public_repos": 1})
	})
	mux.HandleFunc("/users/jane/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []any{})
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("graphql must not be called without a token")
	})

	client, closeServer := newStubClient(t, mux)
	defer closeServer()

	stats, err := client.FetchStats(context.Background(), "jane", "")
	if err != nil {
		t.Fatalf("fetch stats failed: %v", err)
	}
	if stats.Contributions != nil {
		t.Fatalf("contributions must stay nil without a token")
	}
}

func TestFetchStatsUnavailable(t *testing.T) {
	client, closeServer := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer closeServer()

	if _, err := client.FetchStats(context.Background(), "jane", ""); !errors.Is(err, ErrGithubUnavailable) {
		t.Fatalf("expected ErrGithubUnavailable, got %v", err)
	}
}

func TestFetchUserPrefersPrimaryEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"id":    7,
			"login": "jane",
			"email": "public@example.com",
		})
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"email": "secondary@example.com", "primary": false},
			{"email": "primary@example.com", "primary": true},
		})
	})

	client, closeServer := newStubClient(t, mux)
	defer closeServer()

	user, err := client.FetchUser(context.Background(), "token")
	if err != nil {
		t.Fatalf("fetch user failed: %v", err)
	}
	if user.Login != "jane" || user.Email != "primary@example.com" {
		t.Fatalf("unexpected user: %#v", user)
	}
}

func TestFetchRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "5" {
			t.Fatalf("expected per_page=5, got %s", got)
		}
		writeJSON(w, []map[string]any{
			{"name": "gitcard", "html_url": "https://github.com/jane/gitcard", "language": "Go", "stargazers_count": 3, "forks_count": 1},
		})
	})

	client, closeServer := newStubClient(t, mux)
	defer closeServer()

	repos, err := client.FetchRepositories(context.Background(), "token", 5)
	if err != nil {
		t.Fatalf("fetch repositories failed: %v", err)
	}
	if len(repos) != 1 || repos[0].Name != "gitcard" || repos[0].Stars != 3 {
		t.Fatalf("unexpected repositories: %#v", repos)
	}
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["code"] != "the-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]string{"access_token": "gho_token"})
	}))
	defer server.Close()

	client := NewClient(zap.NewNop().Sugar())
	cfg := OAuthConfig{ClientID: "id", ClientSecret: "secret", TokenURL: server.URL}

	token, err := client.ExchangeCode(context.Background(), cfg, "the-code")
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if token != "gho_token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := client.ExchangeCode(context.Background(), cfg, "wrong"); !errors.Is(err, ErrOAuthExchange) {
		t.Fatalf("expected ErrOAuthExchange, got %v", err)
	}
}
