package kit

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestChainOrder(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next Endpoint) Endpoint {
			return func(ctx context.Context, req any) (any, error) {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	e := Chain(mw("a"), mw("b"), mw("c"))(func(context.Context, any) (any, error) {
		calls = append(calls, "endpoint")
		return nil, nil
	})
	if _, err := e(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	want := "a,b,c,endpoint"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("call order = %s, want %s", got, want)
	}
}

func TestRecover(t *testing.T) {
	e := Recover()(func(context.Context, any) (any, error) {
		panic("boom")
	})
	_, err := e(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v", err)
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sentinel := errors.New("nope")

	e := Logging(logger, "test")(func(ctx context.Context, req any) (any, error) {
		return req, sentinel
	})

	ctx := WithTransport(context.Background(), "mcp_stdio")
	ctx = WithRequestID(ctx, NewRequestID())
	resp, err := e(ctx, "payload")
	if resp != "payload" {
		t.Errorf("response = %v", resp)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v", err)
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	if got := GetTransport(ctx); got != "http" {
		t.Errorf("default transport = %q", got)
	}
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("default request id = %q", got)
	}

	id := NewRequestID()
	if len(id) != 16 {
		t.Errorf("request id %q has length %d", id, len(id))
	}
	if id == NewRequestID() {
		t.Error("request IDs should not repeat")
	}
}
