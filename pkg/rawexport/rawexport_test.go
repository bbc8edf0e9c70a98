package rawexport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"mdfconv/pkg/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type progressCall struct {
	current int
	total   int
}

func resolveFor(t *testing.T, e *Exporter, argv []string) *options.Resolved {
	t.Helper()
	registry := options.NewRegistry()
	e.ConfigureParser(registry.CommandLine())
	e.ConfigureFileParser(registry.ConfigFile())
	resolver := options.NewResolver(registry, options.ResolverConfig{ProgramName: "mdfconv"}, zap.NewNop())
	resolved, _, err := resolver.Resolve(argv)
	require.NoError(t, err)
	return resolved
}

func TestConvertCopiesInputWithProgress(t *testing.T) {
	tmp := t.TempDir()
	payload := bytes.Repeat([]byte("abc123"), 1000)
	input := filepath.Join(tmp, "rec.mf4")
	require.NoError(t, os.WriteFile(input, payload, 0o644))
	outDir := filepath.Join(tmp, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	e := New(zap.NewNop())
	var calls []progressCall
	e.RegisterProgressCallback(func(current, total int) {
		calls = append(calls, progressCall{current, total})
	})
	e.bufferSize = 1024

	require.True(t, e.Convert(input, outDir))

	copied, err := os.ReadFile(filepath.Join(outDir, "rec.mf4"))
	require.NoError(t, err)
	assert.Equal(t, payload, copied)

	require.NotEmpty(t, calls)
	assert.Equal(t, progressCall{0, len(payload)}, calls[0])
	assert.Equal(t, progressCall{len(payload), len(payload)}, calls[len(calls)-1])
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i].current, calls[i-1].current)
	}
}

func TestConvertRefusesToOverwriteByDefault(t *testing.T) {
	tmp := t.TempDir()
	input := filepath.Join(tmp, "rec.mf4")
	require.NoError(t, os.WriteFile(input, []byte("new"), 0o644))
	outDir := filepath.Join(tmp, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	existing := filepath.Join(outDir, "rec.mf4")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	e := New(zap.NewNop())
	assert.False(t, e.Convert(input, outDir))

	kept, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), kept)
}

func TestConvertOverwriteOption(t *testing.T) {
	tmp := t.TempDir()
	input := filepath.Join(tmp, "rec.mf4")
	require.NoError(t, os.WriteFile(input, []byte("new"), 0o644))
	outDir := filepath.Join(tmp, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	existing := filepath.Join(outDir, "rec.mf4")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	e := New(zap.NewNop())
	resolved := resolveFor(t, e, []string{"--overwrite", "-i", input})
	_, err := e.ParseOptions(resolved)
	require.NoError(t, err)

	require.True(t, e.Convert(input, outDir))
	replaced, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("new"), replaced)
}

func TestConvertMissingInputFails(t *testing.T) {
	e := New(zap.NewNop())
	assert.False(t, e.Convert(filepath.Join(t.TempDir(), "absent.mf4"), t.TempDir()))
}

func TestParseOptionsRejectsNonPositiveBufferSize(t *testing.T) {
	e := New(zap.NewNop())
	resolved := resolveFor(t, e, []string{"--buffer-size", "0", "-i", "a.mf4"})

	_, err := e.ParseOptions(resolved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer-size")
}

func TestParseOptionsAppliesBufferSize(t *testing.T) {
	e := New(zap.NewNop())
	resolved := resolveFor(t, e, []string{"--buffer-size", "128", "-i", "a.mf4"})

	_, err := e.ParseOptions(resolved)
	require.NoError(t, err)
	assert.Equal(t, 128, e.bufferSize)
}
