package task

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tanq16/dust/internal/config"
	"github.com/tanq16/dust/internal/utils"
)

// Task pairs a download URL with the file name it will be saved under.
// A Task is not modified after construction.
type Task struct {
	url        url.URL
	filename   string
	client     utils.HTTPDoer
	configFile string
}

type Option func(*Task)

// WithClient sets the HTTP client used for the probe and download requests.
func WithClient(client utils.HTTPDoer) Option {
	return func(t *Task) {
		if client != nil {
			t.client = client
		}
	}
}

// WithConfigFile sets the configuration file read by Download.
func WithConfigFile(file string) Option {
	return func(t *Task) {
		if file != "" {
			t.configFile = file
		}
	}
}

// New builds a task from an already parsed URL. The file name is the last
// segment of the URL path and must not be empty.
func New(u *url.URL, opts ...Option) (*Task, error) {
	if u == nil {
		return nil, newError(InvalidURL, "new", fmt.Errorf("nil URL"))
	}
	filename, ok := lastSegment(u.Path)
	if !ok {
		return nil, newError(InvalidURL, "new", fmt.Errorf("no file name in %q", u.String()))
	}
	t := &Task{
		url:        *u,
		filename:   filename,
		client:     utils.DefaultHTTPClient,
		configFile: config.DefaultFile,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Parse builds a task from a raw URL string. raw must be an absolute URL.
func Parse(raw string, opts ...Option) (*Task, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, newError(ParseURL, "parse", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, newError(ParseURL, "parse", fmt.Errorf("%q is not an absolute URL", raw))
	}
	return New(u, opts...)
}

func (t *Task) URL() *url.URL {
	u := t.url
	return &u
}

func (t *Task) Filename() string {
	return t.filename
}

func (t *Task) String() string {
	return fmt.Sprintf("%s -> %s", t.url.String(), t.filename)
}

func lastSegment(p string) (string, bool) {
	i := strings.LastIndex(p, "/")
	name := p[i+1:]
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}
