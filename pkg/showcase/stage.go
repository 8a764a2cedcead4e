package showcase

import (
	"context"

	"github.com/saketk/familystream/pkg/family"
)

// Emit writes one result line to the run's sink.
type Emit func(line string) error

// Stage is one named demo. Run owns members for its duration and may mutate
// them; the runner builds a fresh dataset for every stage.
type Stage interface {
	// Run evaluates the demo over members and emits its result lines.
	Run(ctx context.Context, members []*family.Member, emit Emit) error

	// Name returns a unique identifier for this stage.
	Name() string
}

// StageFunc is a function type that implements the Stage interface.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, members []*family.Member, emit Emit) error
}

// Run implements the Stage interface for StageFunc.
func (sf *StageFunc) Run(ctx context.Context, members []*family.Member, emit Emit) error {
	return sf.fn(ctx, members, emit)
}

// Name returns the stage name.
func (sf *StageFunc) Name() string {
	return sf.name
}

// NewStageFunc creates a new stage from a function.
func NewStageFunc(name string, fn func(ctx context.Context, members []*family.Member, emit Emit) error) Stage {
	return &StageFunc{name: name, fn: fn}
}
