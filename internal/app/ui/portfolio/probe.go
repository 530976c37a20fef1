package portfolio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/app/errors"
	"folio/internal/app/worker"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Prober checks whether image sources can actually be loaded
type Prober struct {
	client  *http.Client
	pool    worker.Pool
	timeout time.Duration
	log     logger.Logger
}

// NewProber creates a prober, or returns nil when probing is disabled
func NewProber(cfg *config.Config, pool worker.Pool, log logger.Logger) *Prober {
	if !cfg.Images.Probe {
		return nil
	}

	return &Prober{
		client: &http.Client{
			Transport: &http.Transport{DisableKeepAlives: true},
		},
		pool:    pool,
		timeout: cfg.Images.Timeout,
		log:     log.WithComponent("PROBE"),
	}
}

// Check fetches src and reports whether it serves an image
func (p *Prober) Check(ctx context.Context, src string) error {
	if err := p.pool.Acquire(ctx); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrImageUnavailable, err)
	}
	defer p.pool.Release()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCreateRequest, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrImageUnavailable, err)
	}

	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", errors.ErrImageUnavailable, resp.StatusCode)
	}

	if contentType := resp.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: content type '%s'", errors.ErrImageUnavailable, contentType)
	}

	p.log.Debug().Msgf("Image '%s' is available", src)

	return nil
}

// probeCmd checks one picture element and reports it only when it fails
func probeCmd(ctx context.Context, p *Prober, id, src string) tea.Cmd {
	return func() tea.Msg {
		if err := p.Check(ctx, src); err != nil {
			return imageFailedMsg{id: id, err: err}
		}

		return nil
	}
}
