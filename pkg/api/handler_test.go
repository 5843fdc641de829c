package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hazyhaar/wordmill/pkg/langpack"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := langpack.NewRegistry(t.TempDir())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	srv := httptest.NewServer(NewRouter(reg, logger))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandlePreprocess(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess",
		`{"text": "<i>Hel 9lo</i> <b>Wo9 rld</b>! Th3     weather_is really g00d today, isn't it?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out preprocessResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	want := []string{"hel", "rld", "weather", "todai", "isn"}
	if diff := cmp.Diff(want, out.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if out.Language != "en" {
		t.Errorf("language = %q, want default en", out.Language)
	}
}

func TestHandlePreprocess_CustomFilters(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess",
		`{"text": "The 3 Cats.", "filters": ["lowercase", "strip_punctuation"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out preprocessResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	want := []string{"the", "3", "cats"}
	if diff := cmp.Diff(want, out.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlePreprocess_UnknownFilter(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess",
		`{"text": "hello", "filters": ["frobnicate"]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandlePreprocess_UnknownLanguage(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess", `{"text": "hello", "language": "tlh"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandlePreprocess_BadJSON(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess", `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandlePreprocess_GetNotAllowed(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/preprocess")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandlePreprocessBatch(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/preprocess/batch",
		`{"texts": ["The cats are running.", "Ponies eat quickly!"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out batchResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"cat", "run"},
		{"poni", "eat", "quickli"},
	}
	if diff := cmp.Diff(want, out.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlePreprocessBatch_TooMany(t *testing.T) {
	srv := testServer(t)

	texts := make([]string, 101)
	for i := range texts {
		texts[i] = `"x"`
	}
	body := `{"texts": [` + strings.Join(texts, ",") + `]}`
	resp := postJSON(t, srv.URL+"/v1/preprocess/batch", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversized batch", resp.StatusCode)
	}
}

func TestHandleStem(t *testing.T) {
	srv := testServer(t)

	for word, want := range map[string]string{
		"ponies":       "poni",
		"Relational":   "relat",
		"controlling ": "control",
	} {
		resp, err := http.Get(srv.URL + "/v1/stem/" + strings.TrimSpace(word))
		if err != nil {
			t.Fatal(err)
		}
		var out stemResp
		err = json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if out.Stem != want {
			t.Errorf("stem(%q) = %q, want %q", word, out.Stem, want)
		}
	}
}

func TestHandleListFilters(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/filters")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out filtersResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Filters) < 10 {
		t.Errorf("only %d filters listed", len(out.Filters))
	}
	wantDefault := []string{
		"lowercase", "strip_tags", "strip_punctuation", "strip_multiple_whitespaces",
		"strip_numeric", "remove_stopwords", "strip_short", "stem_text",
	}
	if diff := cmp.Diff(wantDefault, out.Default); diff != "" {
		t.Errorf("default chain mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleListPacks(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/packs")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out packsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	// Built-in English and Dutch are always present.
	if len(out.Packs) != 2 {
		t.Fatalf("got %d packs, want 2 builtins", len(out.Packs))
	}
	if out.Packs[0].Language != "en" || out.Packs[1].Language != "nl" {
		t.Errorf("pack order: %+v", out.Packs)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Status != "ok" {
		t.Errorf("status field = %q", out.Status)
	}
	if out.Packs != 2 {
		t.Errorf("packs = %d, want 2", out.Packs)
	}
	if out.Words == 0 {
		t.Error("words count is zero")
	}
}
