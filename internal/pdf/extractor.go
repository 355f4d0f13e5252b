package pdf

import (
	"strings"

	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/gen2brain/go-fitz"
)

// TextExtractor pulls plain text out of uploaded documents.
// It never fails: anything unreadable degrades to empty text so the
// upload flow can proceed, and the failure is only logged.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the concatenated text of all pages, or "" if the
// document cannot be opened or rendered.
func (e *TextExtractor) ExtractText(data []byte) (text string) {
	// The underlying renderer is cgo; treat a panic like any other
	// unreadable document.
	defer func() {
		if r := recover(); r != nil {
			logx.Warnf("pdf extraction panicked, returning empty text: %v", r)
			text = ""
		}
	}()

	if len(data) == 0 {
		return ""
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		logx.Warnf("failed to open document, returning empty text: %v", err)
		return ""
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			logx.Warnf("failed to extract text from page %d: %v", i, err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text = strings.TrimSpace(sb.String())
	if text == "" {
		logx.Warn("document parsed but contains no text")
	}
	return text
}
