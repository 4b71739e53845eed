package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipros/console/internal/console"
)

func TestPrintSurface(t *testing.T) {
	var buf bytes.Buffer
	s := NewPrintSurface(&buf)

	_, ok := s.LastToast()
	assert.False(t, ok)

	s.SetInput("open calculator")
	s.SetBusy(true)
	s.SetBusy(false)
	s.ShowToast(console.Toast{Message: "Done", Severity: console.Success, Duration: 6 * time.Second})
	s.SetInput("")
	s.HideToast()

	out := buf.String()
	assert.Contains(t, out, "open calculator")
	assert.Contains(t, out, "AIPROS is thinking…")
	assert.Contains(t, out, "Done")

	last, ok := s.LastToast()
	require.True(t, ok)
	assert.Equal(t, console.Success, last.Severity)
}

func TestRunOnce(t *testing.T) {
	t.Setenv("AIPROS_HOME", t.TempDir())
	t.Setenv("AIPROS_BACKEND_URL", "")
	t.Chdir(t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"Tool 'x' not registered"}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	failed, err := RunOnce(context.Background(), &buf, Options{BackendURL: srv.URL}, func(ctx context.Context, c *console.Console) {
		c.Submit(ctx, "do x")
	})
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Contains(t, buf.String(), "Tool 'x' not registered")
}

func TestRunOnce_InvalidBackend(t *testing.T) {
	t.Setenv("AIPROS_HOME", t.TempDir())
	t.Setenv("AIPROS_BACKEND_URL", "")
	t.Chdir(t.TempDir())

	_, err := RunOnce(context.Background(), &bytes.Buffer{}, Options{BackendURL: "not a url"}, func(context.Context, *console.Console) {
		t.Fatal("console must not run without a valid backend")
	})
	assert.Error(t, err)
}

func TestRunOnce_NullReplyIsUnreachable(t *testing.T) {
	t.Setenv("AIPROS_HOME", t.TempDir())
	t.Setenv("AIPROS_BACKEND_URL", "")
	t.Chdir(t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	tests := []struct {
		name string
		run  func(context.Context, *console.Console)
		want string
	}{
		{"command", func(ctx context.Context, c *console.Console) { c.Submit(ctx, "open calculator") }, "Backend not reachable"},
		{"voice", func(ctx context.Context, c *console.Console) { c.StartVoice(ctx) }, "Microphone error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			failed, err := RunOnce(context.Background(), &buf, Options{BackendURL: srv.URL}, tt.run)
			require.NoError(t, err)
			assert.True(t, failed)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
