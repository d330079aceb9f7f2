package country

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fritz-nvm/Telex-AI-agent/llm"
)

// Resolver orchestrates the three external collaborators — country name
// extraction, country data lookup and cultural fact generation — into one
// formatted answer. Every step is bounded by the deadline carried on the
// context passed to Resolve.
type Resolver struct {
	fetcher   Fetcher
	generator llm.FactGenerator
}

// NewResolver creates a Resolver over the given collaborators.
func NewResolver(fetcher Fetcher, generator llm.FactGenerator) *Resolver {
	return &Resolver{
		fetcher:   fetcher,
		generator: generator,
	}
}

// Resolve turns the user's free text into a formatted country summary.
// On failure the returned text is still agent-readable — an explanation the
// end user can act on — and the error classifies why the full answer could
// not be produced (ErrNotRecognized, ErrCountryNotFound,
// ErrGenerationUnavailable, ErrDeadlineExceeded).
func (r *Resolver) Resolve(ctx context.Context, userText string) (string, error) {
	name, err := ExtractCountryName(userText)
	if err != nil {
		return "Please specify a country (e.g., 'tell me about Kenya').", ErrNotRecognized
	}

	record, err := r.fetcher.FetchCountry(ctx, name)
	if err != nil {
		if deadlineExpired(ctx, err) {
			return timeoutText(name), fmt.Errorf("%w: fetching %s", ErrDeadlineExceeded, name)
		}
		if errors.Is(err, ErrCountryNotFound) {
			return fmt.Sprintf("Sorry, I couldn't find a country called %q. Try the official short name (e.g., 'tell me about Japan').", name), err
		}
		return fmt.Sprintf("Sorry, I couldn't look up %s right now. Please try again in a moment.", name), fmt.Errorf("country lookup for %s: %w", name, err)
	}

	fact, err := r.generator.GenerateFact(ctx, record.DisplayName())
	if err != nil {
		if deadlineExpired(ctx, err) {
			return timeoutText(name), fmt.Errorf("%w: generating fact for %s", ErrDeadlineExceeded, name)
		}
		return fmt.Sprintf("Sorry, I couldn't put together a cultural fact about %s right now.", record.DisplayName()), fmt.Errorf("%w: %s", ErrGenerationUnavailable, err)
	}

	return FormatSummary(record, fact), nil
}

// deadlineExpired reports whether the step failed because the overall
// resolution deadline ran out, rather than for a reason of its own.
func deadlineExpired(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded)
}

func timeoutText(name string) string {
	return fmt.Sprintf("Sorry, gathering information about %s took too long.", name)
}
