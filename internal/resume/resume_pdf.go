package resume

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// pdfLine is one rendered line. Bold lines switch to the second font.
type pdfLine struct {
	text string
	bold bool
	size int
}

func header(text string, size int) pdfLine { return pdfLine{text: text, bold: true, size: size} }
func body(text string) pdfLine             { return pdfLine{text: text, size: 11} }
func blank() pdfLine                       { return pdfLine{text: "", size: 11} }

const (
	// maxLineRunes keeps an 11pt Helvetica line inside the MediaBox
	// width with the 50pt margins.
	maxLineRunes = 90
	// maxPageLines is the number of 16pt-leading lines that fit between
	// the top and bottom margins.
	maxPageLines = 44
)

// buildResumePDF renders the lines into a minimal PDF. Text wraps at the
// page width and spills onto additional pages when the line budget of a
// page is exceeded. Both fonts declare /WinAnsiEncoding, and line text is
// narrowed to that single-byte form before it enters the content stream.
func buildResumePDF(lines []pdfLine) ([]byte, error) {
	if len(lines) == 0 {
		lines = []pdfLine{body("Resume")}
	}

	wrapped := make([]pdfLine, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, maxLineRunes)...)
	}

	pages := make([][]pdfLine, 0, 1)
	for start := 0; start < len(wrapped); start += maxPageLines {
		end := start + maxPageLines
		if end > len(wrapped) {
			end = len(wrapped)
		}
		pages = append(pages, wrapped[start:end])
	}

	// Objects 1..4 are the catalog, page tree and the two shared fonts.
	// Each page then takes two objects: the page and its content stream.
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+2*i))
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), len(pages)),
		"3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>\nendobj\n",
	}
	for i, pageLines := range pages {
		pageNum := 5 + 2*i
		contentNum := pageNum + 1
		stream := buildContentStream(pageLines)
		objects = append(objects,
			fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>\nendobj\n", pageNum, contentNum),
			fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", contentNum, len(stream), stream),
		)
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func buildContentStream(lines []pdfLine) string {
	var content strings.Builder
	content.WriteString("BT\n16 TL\n50 780 Td\n")
	for i, line := range lines {
		font := "F1"
		if line.bold {
			font = "F2"
		}
		size := line.size
		if size == 0 {
			size = 11
		}
		content.WriteString(fmt.Sprintf("/%s %d Tf\n", font, size))

		escaped := pdfEscape(winAnsi(line.text))
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")
	return content.String()
}

// wrapLine splits text on word boundaries so no line exceeds width runes.
// A single word longer than the width is hard-split.
func wrapLine(line pdfLine, width int) []pdfLine {
	if utf8.RuneCountInString(line.text) <= width {
		return []pdfLine{line}
	}

	out := make([]pdfLine, 0, 2)
	var current strings.Builder
	currentLen := 0
	flush := func() {
		seg := line
		seg.text = current.String()
		out = append(out, seg)
		current.Reset()
		currentLen = 0
	}

	for _, word := range strings.Fields(line.text) {
		wordLen := utf8.RuneCountInString(word)
		for wordLen > width {
			if currentLen > 0 {
				flush()
			}
			runes := []rune(word)
			current.WriteString(string(runes[:width]))
			currentLen = width
			flush()
			word = string(runes[width:])
			wordLen = utf8.RuneCountInString(word)
		}
		if currentLen > 0 && currentLen+1+wordLen > width {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	if currentLen > 0 {
		flush()
	}
	if len(out) == 0 {
		return []pdfLine{line}
	}
	return out
}

// winAnsi narrows text to the single-byte encoding the fonts declare.
// Code points above U+00FF have no slot there and degrade to '?'.
func winAnsi(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r > 0xFF {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(byte(r))
	}
	return b.String()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
