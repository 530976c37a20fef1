package portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	apperrors "folio/internal/app/errors"
	"folio/internal/app/ui/sections"
	"folio/internal/app/worker"
	"folio/internal/config"
	"folio/internal/content"
)

func newImageServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/slow.png", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	return httptest.NewServer(mux)
}

func newTestProber(t *testing.T, timeout time.Duration) *Prober {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Images.Probe = true
	cfg.Images.Timeout = timeout

	p := NewProber(cfg, worker.NewWorkerPool(cfg), newMockLogger(gomock.NewController(t)))
	require.NotNil(t, p)

	return p
}

func Test_NewProber_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := config.DefaultConfig()

	assert.Nil(t, NewProber(cfg, worker.NewWorkerPool(cfg), newMockLogger(ctrl)))
}

func Test_Prober_Check_CancelledWhileWaiting(t *testing.T) {
	p := newTestProber(t, time.Second)
	p.pool = worker.NewWorkerPool(&config.Config{})

	require.NoError(t, p.pool.Acquire(context.Background()))
	defer p.pool.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Check(ctx, "http://127.0.0.1:1/never.png")

	assert.ErrorIs(t, err, apperrors.ErrImageUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Prober_Check(t *testing.T) {
	defer goleak.VerifyNone(t)

	server := newImageServer()
	defer server.Close()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name     string
		src      string
		expected error
	}{
		{name: "image", src: server.URL + "/ok.png"},
		{name: "not found", src: server.URL + "/missing.png", expected: apperrors.ErrImageUnavailable},
		{name: "not an image", src: server.URL + "/page", expected: apperrors.ErrImageUnavailable},
		{name: "timeout", src: server.URL + "/slow.png", expected: apperrors.ErrImageUnavailable},
		{name: "connection refused", src: closedURL + "/ok.png", expected: apperrors.ErrImageUnavailable},
		{name: "malformed url", src: "http://[::1]:namedport", expected: apperrors.ErrFailedToCreateRequest},
	}

	p := newTestProber(t, 200*time.Millisecond)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(context.Background(), tt.src)

			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_probeCmd(t *testing.T) {
	defer goleak.VerifyNone(t)

	server := newImageServer()
	defer server.Close()

	p := newTestProber(t, time.Second)

	assert.Nil(t, probeCmd(context.Background(), p, "ok", server.URL+"/ok.png")())

	msg := probeCmd(context.Background(), p, "broken", server.URL+"/missing.png")()

	failed, ok := msg.(imageFailedMsg)
	require.True(t, ok)
	assert.Equal(t, "broken", failed.id)
	assert.ErrorIs(t, failed.err, apperrors.ErrImageUnavailable)
}

func Test_Init(t *testing.T) {
	t.Run("probing disabled", func(t *testing.T) {
		m := newTestModel(t, newRealNavigator(t), content.Default(), nil)

		assert.Nil(t, m.Init())
	})

	t.Run("broken images fall back", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		server := newImageServer()
		defer server.Close()

		p := &content.Portfolio{
			Profile: content.Profile{
				Name:             "Tester",
				PhotoURL:         server.URL + "/ok.png",
				PhotoFallbackURL: server.URL + "/missing.png",
			},
			Projects: []content.Project{
				{Title: "Broken", ImageURL: server.URL + "/missing.png"},
				{Title: "Fine", ImageURL: server.URL + "/ok.png"},
			},
			ProjectImageFallback: "https://placehold.co/400x250?text=Image+Error",
		}

		m := newTestModel(t, newRealNavigator(t), p, newTestProber(t, time.Second))

		msgs := collectMsgs(m.Init())
		require.Len(t, msgs, 1)

		failed, ok := msgs[0].(imageFailedMsg)
		require.True(t, ok)
		assert.Equal(t, sections.ProjectImageID(0), failed.id)

		updated, _ := m.Update(failed)
		m = updated.(Model)

		broken, _ := m.renderer.Images().Get(sections.ProjectImageID(0))
		fine, _ := m.renderer.Images().Get(sections.ProjectImageID(1))
		photo, _ := m.renderer.Images().Get(sections.AboutPhotoID)

		assert.True(t, broken.Failed())
		assert.Equal(t, "Image Error", broken.Caption())
		assert.False(t, fine.Failed())
		assert.False(t, photo.Failed())
	})
}
