package task

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

// ContentLength returns the size advertised by the server for the task URL.
// The second result is false when the size is unavailable for any reason.
func (t *Task) ContentLength(ctx context.Context) (int64, bool) {
	size, err := t.Probe(ctx)
	if err != nil {
		log.Debug().Str("op", "task/probe").Err(err).Msgf("Content length unavailable for %s", t.filename)
		return 0, false
	}
	return size, true
}

// Probe sends a HEAD request and parses the Content-Length header. It returns
// ErrNoContentLength when the server omits the header or sends an invalid one,
// and a Transport error when the request fails.
func (t *Task) Probe(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, t.url.String(), nil)
	if err != nil {
		return 0, newError(Transport, "create HEAD request", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return 0, newError(Transport, "HEAD", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return 0, newError(Transport, "HEAD", fmt.Errorf("server returned status %d", resp.StatusCode))
	}
	header := resp.Header.Get("Content-Length")
	if header == "" {
		return 0, ErrNoContentLength
	}
	size, err := strconv.ParseUint(header, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoContentLength, header)
	}
	return int64(size), nil
}
