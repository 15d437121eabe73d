package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanq16/dust/internal/task"
	"github.com/tanq16/dust/internal/utils"
)

func TestReadURL(t *testing.T) {
	var out bytes.Buffer
	got, err := readURL(strings.NewReader("  http://example.com/file.zip \n"), &out, true)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/file.zip", got)
	assert.Equal(t, "URL: ", out.String())
}

func TestReadURLWithoutPrompt(t *testing.T) {
	var out bytes.Buffer
	got, err := readURL(strings.NewReader("http://example.com/file.zip"), &out, false)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/file.zip", got)
	assert.Empty(t, out.String())
}

func TestReadURLEmpty(t *testing.T) {
	_, err := readURL(strings.NewReader("   \n"), &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, errNoURL)
}

func useConfig(t *testing.T) string {
	t.Helper()
	dest := t.TempDir()
	data, err := json.Marshal(map[string]string{"path": dest})
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, data, 0644))
	prev := configFile
	configFile = file
	t.Cleanup(func() { configFile = prev })
	return dest
}

func TestRunDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello dust"))
	}))
	defer server.Close()
	dest := useConfig(t)

	name, err := runDownload(context.Background(), server.URL+"/hello.txt", utils.NewDustHTTPClient(utils.HTTPClientConfig{}))
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", name)

	got, err := os.ReadFile(filepath.Join(dest, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello dust", string(got))
}

func TestRunDownloadErrors(t *testing.T) {
	useConfig(t)
	client := utils.NewDustHTTPClient(utils.HTTPClientConfig{})

	_, err := runDownload(context.Background(), "http://example.com/", client)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to create task: "))
	assert.True(t, task.IsKind(err, task.InvalidURL))

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	_, err = runDownload(context.Background(), server.URL+"/missing.bin", client)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "download failed: "))
	assert.True(t, task.IsKind(err, task.Transport))
}

func TestDescribeSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "104857600")
	}))
	defer server.Close()

	tk, err := task.Parse(server.URL + "/100MB.zip")
	require.NoError(t, err)
	msg, ok := describeSize(context.Background(), tk)
	assert.True(t, ok)
	assert.Equal(t, "100MB.zip: 100.00 MB (104857600 bytes)", msg)

	server.Close()
	msg, ok = describeSize(context.Background(), tk)
	assert.False(t, ok)
	assert.Equal(t, "100MB.zip: size unknown", msg)
}
