package profile

import (
	"strings"
	"testing"

	"github.com/Abraxas-365/ascent/internal/pdf"
	"github.com/Abraxas-365/ascent/internal/skills"
)

func newTestParser() *Parser {
	return NewParser(pdf.NewTextExtractor(), skills.NewExtractor(nil))
}

func TestParseTextExtractsContacts(t *testing.T) {
	p := newTestParser()

	text := `Jane Doe
Senior Backend Engineer
jane.doe@example.com | +1 (555) 123-4567

Experience building services in Go with PostgreSQL and Redis.`

	ext := p.ParseText(text)

	if ext.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q, want jane.doe@example.com", ext.Email)
	}
	if !strings.Contains(ext.Phone, "555") {
		t.Errorf("Phone = %q, want a match containing 555", ext.Phone)
	}
	if len(ext.Skills) == 0 {
		t.Error("expected skills extracted from text")
	}
	if ext.Text != text {
		t.Error("Text should carry the input through unchanged")
	}
}

func TestParseTextFirstEmailWins(t *testing.T) {
	p := newTestParser()

	ext := p.ParseText("contact: first@example.com or second@example.com")
	if ext.Email != "first@example.com" {
		t.Errorf("Email = %q, want the first match", ext.Email)
	}
}

func TestParseTextNoContacts(t *testing.T) {
	p := newTestParser()

	ext := p.ParseText("no contact details here")
	if ext.Email != "" {
		t.Errorf("Email = %q, want empty", ext.Email)
	}
	if ext.Phone != "" {
		t.Errorf("Phone = %q, want empty", ext.Phone)
	}
}

func TestParseUnreadableDocument(t *testing.T) {
	p := newTestParser()

	// Not a valid document: extraction degrades to an empty result
	// instead of failing.
	ext := p.Parse([]byte("definitely not a pdf"))

	if ext.Text != "" {
		t.Errorf("Text = %q, want empty for unreadable input", ext.Text)
	}
	if ext.Email != "" || ext.Phone != "" {
		t.Error("contacts should be empty for unreadable input")
	}
}
