package classify

import (
	"context"
	"log/slog"
	"math/rand"

	"autoclean/internal/model"
)

// Skip is the resolver decision that excludes a file from organization.
const Skip = ""

// Resolver decides a single category for a file matching several.
// Returning Skip excludes the file; resolution itself cannot fail — the only
// error a Resolver may return is context cancellation from a blocked prompt.
type Resolver interface {
	Resolve(ctx context.Context, file *model.FileRecord, candidates []string) (string, error)
}

// CategoryPrompter is the synchronous callback the interactive resolver
// blocks on. Implementations present the candidates plus the fallback and a
// skip option; returning Skip drops the file from the plan.
type CategoryPrompter interface {
	SelectCategory(ctx context.Context, file *model.FileRecord, candidates []string, fallback string) (string, error)
}

// FirstMatch deterministically picks the earliest candidate in table order.
// This is the default automatic policy.
type FirstMatch struct{}

// Resolve returns candidates[0].
func (FirstMatch) Resolve(_ context.Context, file *model.FileRecord, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return Skip, nil
	}
	choice := candidates[0]
	slog.Debug("auto-resolved ambiguous file", "file", file.Name, "category", choice)
	return choice, nil
}

// Random picks a uniformly random candidate. Opt-in only: seed it for
// reproducible runs.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random resolver from a seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Resolve returns a random candidate.
func (r *Random) Resolve(_ context.Context, file *model.FileRecord, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return Skip, nil
	}
	choice := candidates[r.rng.Intn(len(candidates))]
	slog.Debug("randomly resolved ambiguous file", "file", file.Name, "category", choice)
	return choice, nil
}

// Interactive defers the decision to a human through a CategoryPrompter.
// The whole pipeline blocks until the prompt returns.
type Interactive struct {
	prompter CategoryPrompter
	fallback string
}

// NewInteractive creates an interactive resolver offering the given fallback
// category alongside the candidates.
func NewInteractive(prompter CategoryPrompter, fallback string) *Interactive {
	return &Interactive{prompter: prompter, fallback: fallback}
}

// Resolve blocks on the prompter and returns its choice verbatim.
func (r *Interactive) Resolve(ctx context.Context, file *model.FileRecord, candidates []string) (string, error) {
	return r.prompter.SelectCategory(ctx, file, candidates, r.fallback)
}
