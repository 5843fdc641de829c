package importer

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestCheckAll(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
	}))
	defer okSrv.Close()

	goneSrv := httptest.NewServer(http.NotFoundHandler())
	defer goneSrv.Close()

	sdb := tempSourceDB(t)
	err := sdb.Seed([]Adapter{
		&fakeAdapter{"src-ok", "en-pack", "en", "alive", okSrv.URL, "MIT"},
		&fakeAdapter{"src-gone", "nl-pack", "nl", "vanished", goneSrv.URL, "MIT"},
	})
	if err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	checker := NewChecker(sdb, logger, time.Hour)
	sum := checker.CheckAll(context.Background())
	if sum.OK != 1 || sum.Failed != 1 {
		t.Errorf("summary = %+v, want 1 ok / 1 failed", sum)
	}

	sources, err := sdb.ListSources()
	if err != nil {
		t.Fatal(err)
	}
	byID := make(map[string]Source, len(sources))
	for _, s := range sources {
		byID[s.AdapterID] = s
	}

	ok := byID["src-ok"]
	if ok.LastStatus == nil || *ok.LastStatus != http.StatusOK {
		t.Errorf("src-ok status = %v, want 200", ok.LastStatus)
	}
	if ok.LastCheck == nil {
		t.Error("src-ok: LastCheck not recorded")
	}

	gone := byID["src-gone"]
	if gone.LastStatus == nil || *gone.LastStatus != http.StatusNotFound {
		t.Errorf("src-gone status = %v, want 404", gone.LastStatus)
	}
}
