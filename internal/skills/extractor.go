package skills

import "strings"

// Extractor scans text against a fixed case-insensitive vocabulary.
// It is deterministic and side-effect-free: the same input always
// yields the same set, in vocabulary order, deduplicated.
type Extractor struct {
	vocabulary []string
	lowered    []string
}

// NewExtractor builds an extractor over the given vocabulary.
// Pass nil to use DefaultVocabulary.
func NewExtractor(vocabulary []string) *Extractor {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary
	}
	lowered := make([]string, len(vocabulary))
	for i, v := range vocabulary {
		lowered[i] = strings.ToLower(v)
	}
	return &Extractor{vocabulary: vocabulary, lowered: lowered}
}

// Extract returns the canonical names of every vocabulary entry found
// in text by case-insensitive substring containment.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	lowerText := strings.ToLower(text)
	found := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)

	for i, needle := range e.lowered {
		if !strings.Contains(lowerText, needle) {
			continue
		}
		canonical := e.vocabulary[i]
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		found = append(found, canonical)
	}

	return found
}
