package console

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/auth"
	"github.com/fekuna/omnipos-console/internal/logger"
)

func newConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	gate, err := auth.NewGate("admin@example.com", "secret")
	require.NoError(t, err)

	r := NewRouter(logger.NewNop())
	r.Handle("echo", "me", "echo me", func(ctx context.Context, req *Request) (interface{}, error) {
		return map[string]string{"user": auth.GetUserEmail(ctx), "say": req.String("say")}, nil
	})
	r.Handle("item", "delete", "item delete <id> confirm=yes", func(ctx context.Context, req *Request) (interface{}, error) {
		if err := req.Confirmed(); err != nil {
			return nil, err
		}
		return nil, apperr.NotFound("item", req.Positional[0])
	})

	out := &bytes.Buffer{}
	return New(r, gate, "> ", out, logger.NewNop()), out
}

func lastJSON(t *testing.T, out *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &v), out.String())
	out.Reset()
	return v
}

func TestConsoleRequiresLogin(t *testing.T) {
	c, out := newConsole(t)
	ctx := context.Background()

	c.Exec(ctx, "echo me say=hi")
	assert.Equal(t, "unauthorized", lastJSON(t, out)["kind"])

	c.Exec(ctx, "login email=admin@example.com password=wrong")
	assert.Equal(t, "unauthorized", lastJSON(t, out)["kind"])
	assert.False(t, c.LoggedIn())

	c.Exec(ctx, "login admin@example.com secret")
	lastJSON(t, out)
	require.True(t, c.LoggedIn())

	c.Exec(ctx, `echo me say="hello there"`)
	res := lastJSON(t, out)
	assert.Equal(t, "admin@example.com", res["user"])
	assert.Equal(t, "hello there", res["say"])

	c.Exec(ctx, "logout")
	lastJSON(t, out)
	assert.False(t, c.LoggedIn())
}

func TestConsoleErrors(t *testing.T) {
	c, out := newConsole(t)
	ctx := context.Background()
	c.Exec(ctx, "login email=admin@example.com password=secret")
	out.Reset()

	c.Exec(ctx, "item delete 7")
	assert.Equal(t, "validation", lastJSON(t, out)["kind"])

	c.Exec(ctx, "item delete 7 confirm=yes")
	res := lastJSON(t, out)
	assert.Equal(t, "not_found", res["kind"])
	assert.Equal(t, `item "7" not found`, res["error"])

	c.Exec(ctx, "nothing here")
	assert.Equal(t, "validation", lastJSON(t, out)["kind"])
}

func TestConsoleRun(t *testing.T) {
	c, out := newConsole(t)
	in := strings.NewReader("help\nlogin email=admin@example.com password=secret\necho me\nquit\necho me\n")

	require.NoError(t, c.Run(context.Background(), in))
	assert.Contains(t, out.String(), "echo me")
	assert.Contains(t, out.String(), `"user": "admin@example.com"`)
	assert.Equal(t, 1, strings.Count(out.String(), `"user"`))
}

func TestConsoleRunReleasesReaderAfterQuit(t *testing.T) {
	c, _ := newConsole(t)
	before := runtime.NumGoroutine()

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Run(context.Background(), strings.NewReader("quit\nhelp\nhelp\n")))
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond)
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	c, _ := newConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, c.Run(ctx, strings.NewReader("")))
}

func TestRouterRejectsDuplicateRoute(t *testing.T) {
	r := NewRouter(logger.NewNop())
	h := func(ctx context.Context, req *Request) (interface{}, error) { return nil, nil }
	r.Handle("a", "b", "a b", h)
	assert.Panics(t, func() { r.Handle("a", "b", "a b", h) })
}
