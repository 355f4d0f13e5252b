package profile

import (
	"regexp"

	"github.com/Abraxas-365/ascent/internal/pdf"
	"github.com/Abraxas-365/ascent/internal/skills"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`[\d\s\-\+\(\)]{10,}`)
)

// Extraction is the parsed content of an uploaded résumé document.
// Any of its fields may be empty when the document is unreadable.
type Extraction struct {
	Text   string
	Skills []string
	Email  string
	Phone  string
}

// Parser turns document bytes into an Extraction. Total: it never
// fails, it only degrades.
type Parser struct {
	text   *pdf.TextExtractor
	skills *skills.Extractor
}

func NewParser(text *pdf.TextExtractor, skillExtractor *skills.Extractor) *Parser {
	return &Parser{text: text, skills: skillExtractor}
}

func (p *Parser) Parse(data []byte) Extraction {
	text := p.text.ExtractText(data)
	return p.ParseText(text)
}

// ParseText runs skill and contact extraction over already-extracted text.
func (p *Parser) ParseText(text string) Extraction {
	ext := Extraction{
		Text:   text,
		Skills: p.skills.Extract(text),
	}
	if m := emailPattern.FindString(text); m != "" {
		ext.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		ext.Phone = m
	}
	return ext
}
