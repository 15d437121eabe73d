package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/dust/internal/task"
	"github.com/tanq16/dust/internal/utils"
)

var errNoURL = errors.New("no URL provided")

// readURL reads one line from in and trims it. The prompt is only written
// when prompt is true.
func readURL(in io.Reader, out io.Writer, prompt bool) (string, error) {
	if prompt {
		fmt.Fprint(out, "URL: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read URL: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errNoURL
	}
	return line, nil
}

// runDownload builds a task for raw and downloads it, returning the file name.
func runDownload(ctx context.Context, raw string, client utils.HTTPDoer) (string, error) {
	t, err := task.Parse(raw, task.WithClient(client), task.WithConfigFile(configFile))
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}
	log.Debug().Str("op", "cmd/download").Msgf("Created task %s", t)
	if err := t.Download(ctx); err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	return t.Filename(), nil
}
