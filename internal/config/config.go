package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultFile is the configuration file name, resolved against the working directory.
const DefaultFile = "config.json"

var (
	ErrEmptyPath    = errors.New("destination path is empty")
	ErrPathNotFound = errors.New("destination path does not exist")
	ErrNotDirectory = errors.New("destination path is not a directory")
)

// Config holds the download destination settings.
type Config struct {
	Path string `json:"path"`
}

// Error reports a configuration file that could not be loaded or validated.
type Error struct {
	File string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.File, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads and validates the configuration file at file. It is read on
// every call; nothing is cached.
func Load(file string) (Config, error) {
	if file == "" {
		file = DefaultFile
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, &Error{File: file, Err: fmt.Errorf("read: %w", err)}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, &Error{File: file, Err: fmt.Errorf("parse: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{File: file, Err: err}
	}
	return cfg, nil
}

// Validate checks that Path names an existing directory.
func (c Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}
	info, err := os.Stat(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, c.Path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, c.Path)
	}
	return nil
}
