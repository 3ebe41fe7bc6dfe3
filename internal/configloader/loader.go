// Package configloader provides configuration discovery and loading.
// It searches upward from the working directory for a project config file
// and merges it over the built-in defaults.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/tagtree/pkg/config"
)

// configFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFiles = []string{
	".tagtree.yml",
	".tagtree.yaml",
	"tagtree.yml",
	"tagtree.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root; the upward search
// stops at the first one found.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped and a missing file is an
	// error rather than a fallthrough to defaults.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the file the configuration came from, empty when only
	// defaults applied.
	LoadedFrom string
}

// Load resolves the final configuration. Precedence (highest to lowest):
//  1. Explicit config file (opts.ExplicitPath)
//  2. Project config (upward search for .tagtree.yml and variants)
//  3. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	path := opts.ExplicitPath
	if path == "" {
		var err error
		path, err = FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return &LoadResult{Config: config.Default()}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("read config %s", path), err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("load config %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(fmt.Errorf("validate config %s", path), err)
	}

	return &LoadResult{Config: cfg, LoadedFrom: path}, nil
}

// FindProjectConfig searches upward from workDir for a project config file.
// The search stops at a VCS root or the filesystem root. A missing config is
// not an error; the returned path is empty.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range configFiles {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if atVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func atVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
