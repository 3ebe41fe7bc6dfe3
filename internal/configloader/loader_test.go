package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/internal/configloader"
	"github.com/yaklabco/tagtree/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, config.Default(), result.Config)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: json\nindent: 4\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".tagtree.yml"), result.LoadedFrom)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 4, result.Config.Indent)
	assert.Equal(t, config.ColorAuto, result.Config.Color)
}

func TestLoad_UpwardSearch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".tagtree.yaml"), "indent: 3\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: nested,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".tagtree.yaml"), result.LoadedFrom)
	assert.Equal(t, 3, result.Config.Indent)
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".tagtree.yml"), "indent: 5\n")

	// The nested git root fences off the config above it.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: repo,
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, 2, result.Config.Indent)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "color: never\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: path,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, config.ColorNever, result.Config.Color)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: "/nonexistent/config.yaml",
	})
	require.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "indent: 99\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
}
