package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func exportContext(t *testing.T, api *API, target string) (*httptest.ResponseRecorder, *gin.Context, uint) {
	t.Helper()

	user := seedTestUser(t, "jane")
	id := createTestCard(t, api, user, map[string]any{
		"card_title": "My Card",
		"name":       "Jane",
		"tagline":    "building things",
		"stacks": []map[string]any{
			{"id": "1", "key": "go"},
		},
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, user, httptest.NewRequest(http.MethodGet, target+strconv.Itoa(int(id)), nil))
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(id))}}
	return w, c, id
}

func TestExportMarkdown(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w, c, id := exportContext(t, api, "/api/profiles/export/markdown/")

	api.ExportMarkdown(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Markdown string `json:"markdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !strings.Contains(resp.Markdown, "# Jane") {
		t.Fatalf("markdown missing name heading:\n%s", resp.Markdown)
	}
	wantURL := "https://gitcard.dev/dashboard/jane/cards/" + strconv.Itoa(int(id))
	if !strings.Contains(resp.Markdown, wantURL) {
		t.Fatalf("markdown missing public url %q:\n%s", wantURL, resp.Markdown)
	}
}

func TestExportMarkdownHTMLPreview(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w, c, _ := exportContext(t, api, "/api/profiles/export/markdown/")
	q := c.Request.URL.Query()
	q.Set("html", "1")
	c.Request.URL.RawQuery = q.Encode()

	api.ExportMarkdown(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.HTML, "<h1") {
		t.Fatalf("preview should contain rendered headings: %q", resp.HTML)
	}
}

func TestExportBadgeAndEmbed(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w, c, id := exportContext(t, api, "/api/profiles/export/badge/")

	api.ExportBadge(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var badgeResp struct {
		Badge string `json:"badge"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &badgeResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(badgeResp.Badge, "[![GitCard](") {
		t.Fatalf("unexpected badge: %q", badgeResp.Badge)
	}

	w2 := httptest.NewRecorder()
	c2 := authedContext(t, w2, currentUser(c), httptest.NewRequest(http.MethodGet, "/api/profiles/export/embed/"+strconv.Itoa(int(id)), nil))
	c2.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(id))}}

	api.ExportEmbed(c2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w2.Code)
	}
	var embedResp struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &embedResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(embedResp.HTML, `alt="Jane"`) {
		t.Fatalf("embed missing alt text: %q", embedResp.HTML)
	}
}

func TestExportReadme(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w, c, _ := exportContext(t, api, "/api/profiles/export/readme/")

	api.ExportReadme(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Markdown string `json:"markdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Markdown, "capsule-render") {
		t.Fatalf("readme missing banner block:\n%s", resp.Markdown)
	}
	if !strings.Contains(resp.Markdown, "img.shields.io/badge/Go-") {
		t.Fatalf("readme missing stack badge:\n%s", resp.Markdown)
	}
}

func TestExportNotOwnedCard(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	owner := seedTestUser(t, "jane")
	id := createTestCard(t, api, owner, map[string]any{"card_title": "My Card", "name": "Jane"})

	other := seedTestUser(t, "john")

	w := httptest.NewRecorder()
	c := authedContext(t, w, other, httptest.NewRequest(http.MethodGet, "/api/profiles/export/markdown/"+strconv.Itoa(int(id)), nil))
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(id))}}

	api.ExportMarkdown(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
