package task

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tanq16/dust/internal/config"
	"github.com/tanq16/dust/internal/utils"
)

// Download streams the task URL into <config path>/<filename>. The config
// file is read on every call. An existing file is truncated; a failed
// download leaves whatever was written on disk.
func (t *Task) Download(ctx context.Context) error {
	logger := utils.GetLogger("task").With().Str("op", "task/download").Str("id", uuid.NewString()).Logger()

	cfg, err := config.Load(t.configFile)
	if err != nil {
		return newError(Config, "load", err)
	}
	outputPath := t.Destination(cfg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url.String(), nil)
	if err != nil {
		return newError(Transport, "create GET request", err)
	}
	logger.Debug().Str("url", t.url.Redacted()).Msg("Sending GET request")
	resp, err := t.client.Do(req)
	if err != nil {
		return newError(Transport, "GET", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(Transport, "GET", fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return newError(IO, "create output file", err)
	}
	defer outFile.Close()

	start := time.Now()
	written, err := copyChunks(outFile, resp.Body)
	if err != nil {
		return err
	}
	if err := outFile.Sync(); err != nil {
		return newError(IO, "sync output file", err)
	}
	logger.Info().Int64("bytes", written).Dur("elapsed", time.Since(start)).Msgf("Download successful for %s", outputPath)
	return nil
}

// Destination returns the path the task writes to under cfg.
func (t *Task) Destination(cfg config.Config) string {
	return filepath.Join(cfg.Path, t.filename)
}

// copyChunks writes body to out one buffer at a time, in arrival order.
func copyChunks(out io.Writer, body io.Reader) (int64, error) {
	buffer := make([]byte, utils.DefaultBufferSize)
	var written int64
	for {
		bytesRead, readErr := body.Read(buffer)
		if bytesRead > 0 {
			n, writeErr := out.Write(buffer[:bytesRead])
			written += int64(n)
			if writeErr != nil {
				return written, newError(IO, "write output file", writeErr)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return written, nil
			}
			return written, newError(Transport, "read response body", readErr)
		}
	}
}
