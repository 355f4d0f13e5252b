// Package advisor owns every structured judgment requested from the
// inference backend: prompt construction, typed result shapes, and the
// deterministic fallback for each judgment kind.
package advisor

import (
	"github.com/Abraxas-365/ascent/internal/ai/completion"
)

// Advisor issues typed judgment calls through the completion gateway.
// It holds no per-request state; one instance is shared process-wide.
type Advisor struct {
	completer completion.Completer
}

func New(completer completion.Completer) *Advisor {
	return &Advisor{completer: completer}
}
