package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDocument_PlainText(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "line one\nline two\n")

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", text)
}

func TestReadDocument_CSVJoinsFields(t *testing.T) {
	path := writeTempFile(t, "table.csv", "name,role\nalice,engineer\nbob,analyst\n")

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "name,role\nalice,engineer\nbob,analyst\n", text)
}

func TestReadDocument_CSVRaggedRows(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "a,b,c\nd,e\n")

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\nd,e\n", text)
}

func TestReadDocument_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "image.png", "not text")

	_, err := ReadDocument(path)
	require.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Contains(t, err.Error(), "png")
}

func TestReadDocument_ExtensionIsCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "NOTES.TXT", "CONTENT")

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "CONTENT", text)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
