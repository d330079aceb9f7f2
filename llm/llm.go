// Package llm defines the interface between the task pipeline and the
// language model collaborator that produces cultural facts.
package llm

import (
	"context"
)

// FactGenerator generates a short cultural fact about a country.
// Implementations are expected to honour the context deadline.
type FactGenerator interface {
	// GenerateFact returns one short cultural fact about the given country.
	GenerateFact(ctx context.Context, country string) (string, error)
}

// FactGeneratorFunc adapts a plain function to the FactGenerator interface.
type FactGeneratorFunc func(ctx context.Context, country string) (string, error)

// GenerateFact implements FactGenerator.
func (f FactGeneratorFunc) GenerateFact(ctx context.Context, country string) (string, error) {
	return f(ctx, country)
}
