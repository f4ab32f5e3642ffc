package resume

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResumePDF_AccentedText(t *testing.T) {
	pdf, err := buildResumePDF([]pdfLine{body("Teléfono: 300 123 4567")})
	require.NoError(t, err)

	// é must land in the stream as the single WinAnsi byte 0xE9, not as
	// the two UTF-8 bytes 0xC3 0xA9.
	assert.True(t, bytes.Contains(pdf, []byte("Tel\xe9fono")))
	assert.False(t, bytes.Contains(pdf, []byte("Tel\xc3\xa9fono")))
	assert.Equal(t, 2, bytes.Count(pdf, []byte("/Encoding /WinAnsiEncoding")))
}

func TestBuildResumePDF_LongTextWraps(t *testing.T) {
	profile := strings.Repeat("desarrolladora con experiencia ", 10)
	pdf, err := buildResumePDF([]pdfLine{body(profile)})
	require.NoError(t, err)

	// 300+ runes at a 90 rune width needs at least four text operators.
	assert.GreaterOrEqual(t, bytes.Count(pdf, []byte(" Tj")), 4)
}

func TestBuildResumePDF_OverflowAddsPages(t *testing.T) {
	lines := make([]pdfLine, 0, maxPageLines+1)
	for i := 0; i < maxPageLines+1; i++ {
		lines = append(lines, body("linea"))
	}
	pdf, err := buildResumePDF(lines)
	require.NoError(t, err)

	assert.Contains(t, string(pdf), "/Count 2")
	assert.Equal(t, 2, bytes.Count(pdf, []byte("/Type /Page ")))

	single, err := buildResumePDF(lines[:maxPageLines])
	require.NoError(t, err)
	assert.Contains(t, string(single), "/Count 1")
}

func TestWrapLine(t *testing.T) {
	t.Run("short line untouched", func(t *testing.T) {
		out := wrapLine(body("corto"), 10)
		require.Len(t, out, 1)
		assert.Equal(t, "corto", out[0].text)
	})

	t.Run("breaks on word boundaries", func(t *testing.T) {
		out := wrapLine(body("uno dos tres cuatro"), 8)
		require.Len(t, out, 3)
		assert.Equal(t, "uno dos", out[0].text)
		assert.Equal(t, "tres", out[1].text)
		assert.Equal(t, "cuatro", out[2].text)
	})

	t.Run("hard splits an oversized word", func(t *testing.T) {
		out := wrapLine(body("abcdefghij"), 4)
		require.Len(t, out, 3)
		assert.Equal(t, "abcd", out[0].text)
		assert.Equal(t, "efgh", out[1].text)
		assert.Equal(t, "ij", out[2].text)
	})

	t.Run("segments keep the source style", func(t *testing.T) {
		out := wrapLine(header("titulo muy largo de seccion", 14), 12)
		require.Greater(t, len(out), 1)
		for _, seg := range out {
			assert.True(t, seg.bold)
			assert.Equal(t, 14, seg.size)
		}
	})
}
