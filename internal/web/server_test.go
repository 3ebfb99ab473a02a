package web

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

func intp(i int) *int { return &i }

func testServer() *Server {
	cat := catalog.FromRecords([]card.Record{
		{Name: "A", Rarity: card.RarityCommon, FrameType: "Normal Monster", Archetype: "Alpha"},
		{Name: "B", Rarity: card.RarityRare, Status: intp(0), FrameType: "Effect Monster",
			ImageURL: "https://img/b.jpg", DetailURL: "https://db/b"},
		{Name: "C", Rarity: card.RarityCommon, Status: intp(1), FrameType: "Spell Card", Archetype: "Gamma"},
	})
	return NewServer(cat, nil)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeCards(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Cards []card.Record `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	names := make([]string, len(body.Cards))
	for i, c := range body.Cards {
		names[i] = c.Name
	}
	return names
}

func TestHealth(t *testing.T) {
	rr := get(t, testServer(), "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCards_DefaultOrder(t *testing.T) {
	rr := get(t, testServer(), "/api/cards")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"B", "C", "A"}, decodeCards(t, rr))
}

func TestCards_Filters(t *testing.T) {
	s := testServer()

	assert.Equal(t, []string{"C"}, decodeCards(t, get(t, s, "/api/cards?type=spell")))
	assert.Equal(t, []string{"A"}, decodeCards(t, get(t, s, "/api/cards?archetype=Alpha")))
	assert.Equal(t, []string{"B"}, decodeCards(t, get(t, s, "/api/cards?q=+b+")))
	assert.Empty(t, decodeCards(t, get(t, s, "/api/cards?type=normal")))
	assert.Equal(t, []string{"B", "C", "A"}, decodeCards(t, get(t, s, "/api/cards?type=bogus&sort=sideways")))
}

func TestArchetypes(t *testing.T) {
	rr := get(t, testServer(), "/api/archetypes?archetype=Alpha")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"archetypes":["Alpha","Gamma"],"total":2}`, rr.Body.String())
}

func TestPage(t *testing.T) {
	rr := get(t, testServer(), "/?sort=asc")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	// attribute values are entity-escaped by html/template
	raw := rr.Body.String()
	assert.Contains(t, raw, "No&#43;Image")

	body := html.UnescapeString(raw)
	assert.Contains(t, body, `href="https://db/b"`)
	assert.Contains(t, body, `src="https://img/b.jpg"`)
	assert.Contains(t, body, PlaceholderImage)
	assert.Contains(t, body, `<span class="status">0</span>`)
	assert.Contains(t, body, `<option value="Gamma">Gamma</option>`)
	assert.Contains(t, body, "3 of 3 cards")
	assert.Contains(t, body, "Rarity: Lowest → Highest")
	assert.Less(t, strings.Index(body, `alt="B"`), strings.Index(body, `alt="C"`))
}

func TestPage_Empty(t *testing.T) {
	rr := get(t, testServer(), "/?q=zzz")
	assert.Contains(t, rr.Body.String(), "No cards match")
}

func TestParseInputsAndQuery(t *testing.T) {
	q := url.Values{}
	q.Set("q", "dark")
	q.Set("archetype", "Alpha")
	q.Set("type", "Trap")
	q.Set("sort", "asc")
	q.Set("staples", "1")

	in := ParseInputs(q)
	assert.Equal(t, "dark", in.Search)
	assert.Equal(t, "Alpha", in.Archetype)
	assert.Equal(t, card.CategoryTrap, in.Category)
	assert.Equal(t, catalog.Ascending, in.Direction)
	assert.True(t, in.Staples)

	assert.Equal(t, "archetype=Alpha&q=dark&sort=asc&staples=1&type=trap", Query(in).Encode())
	assert.Equal(t, "", Query(catalog.DefaultInputs()).Encode())
}
