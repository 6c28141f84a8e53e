package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// resetExportFlags restores the export command's flag globals after a test.
func resetExportFlags(t *testing.T) {
	t.Helper()
	origFormat, origOut, origSave := exportFormat, exportOut, exportSave
	t.Cleanup(func() {
		exportFormat, exportOut, exportSave = origFormat, origOut, origSave
	})
}

func TestRunExport_OutMatchesStdout(t *testing.T) {
	resetExportFlags(t)
	exportFormat, exportOut, exportSave = "md", "", false

	stdout := captureStdout(t, func() {
		require.NoError(t, runExport(exportCmd, nil))
	})

	exportOut = filepath.Join(t.TempDir(), "registry.md")
	require.NoError(t, runExport(exportCmd, nil))

	written, err := os.ReadFile(exportOut)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written))

	doc, err := registry.Export(registry.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, doc, stdout)
}

func TestRunExport_UnsupportedFormat(t *testing.T) {
	resetExportFlags(t)
	exportFormat, exportOut, exportSave = "xml", "", false

	err := runExport(exportCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
