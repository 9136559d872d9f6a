package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCollection = `{
	"info": {
		"name": "CLI Test API",
		"schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"
	},
	"item": [
		{
			"name": "Users",
			"item": [
				{
					"name": "Get user",
					"request": {
						"method": "GET",
						"url": {"raw": "https://api.example.com/users/1", "path": ["users", "1"]}
					}
				}
			]
		}
	]
}`

func writeTestCollection(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.json")
	require.NoError(t, os.WriteFile(path, []byte(testCollection), 0600))
	return path
}

func TestSetupRenderFlags(t *testing.T) {
	fs, flags := SetupRenderFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Empty(t, flags.Language)
		assert.Empty(t, flags.LogoFile)
		assert.Empty(t, flags.Divider)
		assert.Zero(t, flags.CollapseAfter)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "out.html", "-l", "fr", "--divider", "h2", "--collapse-after", "20", "-q", "col.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "out.html", flags.Output)
		assert.Equal(t, "fr", flags.Language)
		assert.Equal(t, "h2", flags.Divider)
		assert.Equal(t, 20, flags.CollapseAfter)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "col.json", fs.Arg(0))
	})
}

func TestHandleRender_NoArgs(t *testing.T) {
	err := HandleRender([]string{})
	assert.Error(t, err)
}

func TestHandleRender_Help(t *testing.T) {
	err := HandleRender([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleRender_WritesFile(t *testing.T) {
	input := writeTestCollection(t)
	output := filepath.Join(t.TempDir(), "out.html")

	err := HandleRender([]string{"-q", "-o", output, input})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<title>CLI Test API</title>")
	assert.Contains(t, doc, `id="endpoint-users-get-user"`)
}

func TestHandleRender_Language(t *testing.T) {
	input := writeTestCollection(t)
	output := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, HandleRender([]string{"-q", "-l", "fr", "-o", output, input}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Table des matières")
}

func TestHandleRender_LogoFile(t *testing.T) {
	input := writeTestCollection(t)
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.svg")
	logo := `<svg><title>ACME</title></svg>`
	require.NoError(t, os.WriteFile(logoPath, []byte(logo), 0600))
	output := filepath.Join(dir, "out.html")

	require.NoError(t, HandleRender([]string{"-q", "--logo-file", logoPath, "-o", output, input}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), logo)
}

func TestHandleRender_Errors(t *testing.T) {
	input := writeTestCollection(t)

	t.Run("missing collection", func(t *testing.T) {
		err := HandleRender([]string{"-q", "does-not-exist.json"})
		assert.Error(t, err)
	})

	t.Run("missing logo file", func(t *testing.T) {
		err := HandleRender([]string{"-q", "--logo-file", "nope.svg", input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logo")
	})

	t.Run("invalid divider", func(t *testing.T) {
		err := HandleRender([]string{"-q", "--divider", "h9", input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "divider")
	})

	t.Run("invalid language", func(t *testing.T) {
		err := HandleRender([]string{"-q", "-l", "not a tag!", input})
		assert.Error(t, err)
	})

	t.Run("output would overwrite input", func(t *testing.T) {
		err := HandleRender([]string{"-q", "-o", input, input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overwrite")
	})

	t.Run("structurally invalid collection", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"info": {}, "item": []}`), 0600))
		err := HandleRender([]string{"-q", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "structural error")
	})
}
