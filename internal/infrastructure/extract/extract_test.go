package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainText(t *testing.T) {
	got, err := Text("notes.txt", []byte("hello world"), 100)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestText_Markdown(t *testing.T) {
	got, err := Text("README.md", []byte("# Title\n\nbody"), 100)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody", got)
}

func TestText_TruncatesAtMaxChars(t *testing.T) {
	long := strings.Repeat("a", 50)
	got, err := Text("big.txt", []byte(long), 10)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 10), got)
}

func TestText_TruncateIsRuneSafe(t *testing.T) {
	// Mỗi ký tự 3 bytes; cắt theo runes, không theo bytes.
	got, err := Text("vi.txt", []byte("ằằằằằ"), 3)
	require.NoError(t, err)
	assert.Equal(t, "ằằằ", got)
}

func TestText_StripsInvalidUTF8(t *testing.T) {
	data := append([]byte("ok"), 0xff, 0xfe)
	got, err := Text("mixed.txt", data, 100)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestText_ImagesReturnEmpty(t *testing.T) {
	for _, name := range []string{"a.png", "b.jpg", "c.jpeg", "d.webp"} {
		got, err := Text(name, []byte{0x89, 0x50}, 100)
		require.NoError(t, err, name)
		assert.Empty(t, got, name)
	}
}

func TestText_UnsupportedExtension(t *testing.T) {
	_, err := Text("archive.zip", []byte("PK"), 100)
	assert.Error(t, err)
}

func TestText_ExtensionCaseInsensitive(t *testing.T) {
	got, err := Text("NOTES.TXT", []byte("hi"), 100)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "trimmed", Preview("  trimmed  \n", 100))
	assert.Equal(t, "ab", Preview("abcdef", 2))
	assert.Equal(t, "", Preview("   ", 100))
}

func TestText_MalformedPDF(t *testing.T) {
	_, err := Text("broken.pdf", []byte("not a pdf"), 100)
	assert.Error(t, err)
}
