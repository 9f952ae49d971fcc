// Package narrator turns accepted scheduling suggestions into short
// human-readable explanations. The capability is optional: callers must treat
// ErrUnavailable as a normal outcome and proceed without prose.
package narrator

import (
	"context"
	"errors"

	"github.com/example/calendar-resolver/internal/scheduler"
)

// ErrUnavailable indicates no explanation could be produced. Suggestion
// generation must never fail because of it.
var ErrUnavailable = errors.New("narrator: unavailable")

// Request carries the facts of a proposed move.
type Request struct {
	EventTitle string
	Original   scheduler.Window
	Proposed   scheduler.Window
}

// Narrator produces a one-sentence explanation for a proposed move.
type Narrator interface {
	Explain(ctx context.Context, req Request) (string, error)
}

// Noop is the default narrator. It always reports ErrUnavailable.
type Noop struct{}

// Explain implements Narrator.
func (Noop) Explain(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}
