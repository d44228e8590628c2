package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	files, err := generateDocs(rootCmd, docsFormatMarkdown, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dockyard.md"))
	assert.FileExists(t, filepath.Join(dir, "dockyard_demo.md"))
	assert.FileExists(t, filepath.Join(dir, "dockyard_render.md"))
	assert.Contains(t, files, filepath.Join(dir, "dockyard_render.md"))

	render, err := os.ReadFile(filepath.Join(dir, "dockyard_render.md"))
	require.NoError(t, err)
	assert.Contains(t, string(render), "--area")
}

func TestGenerateDocs_Man(t *testing.T) {
	dir := t.TempDir()

	files, err := generateDocs(rootCmd, docsFormatMan, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dockyard-demo.1"))
	for _, f := range files {
		assert.Equal(t, ".1", filepath.Ext(f))
	}
}

func TestGenerateDocs_UnsupportedFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")

	_, err := generateDocs(rootCmd, "html", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "html"`)
	assert.NoDirExists(t, dir)
}

func TestRunGenDocs_UnsupportedFormatWithDefaultDir(t *testing.T) {
	prevFormat, prevDir := genDocsFormat, genDocsOutputDir
	t.Cleanup(func() { genDocsFormat, genDocsOutputDir = prevFormat, prevDir })
	genDocsFormat, genDocsOutputDir = "html", ""

	err := runGenDocs(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRunGenDocs_ReportsPages(t *testing.T) {
	prevFormat, prevDir := genDocsFormat, genDocsOutputDir
	t.Cleanup(func() { genDocsFormat, genDocsOutputDir = prevFormat, prevDir })
	genDocsFormat, genDocsOutputDir = docsFormatMarkdown, t.TempDir()

	var out bytes.Buffer
	genDocsCmd.SetOut(&out)
	t.Cleanup(func() { genDocsCmd.SetOut(nil) })

	require.NoError(t, runGenDocs(genDocsCmd, nil))
	assert.Contains(t, out.String(), "dockyard_demo.md")
}
