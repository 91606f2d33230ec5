package llm

import "context"

// Purpose labels tie provider calls in the event log back to the
// feature that issued them (quiz-gen, verify-answer, article-gen, ...).
// The label rides the context so decorators can read it without
// widening the Provider interface.

type purposeKey struct{}

// WithPurpose labels ctx with the calling feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reports the purpose label on ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
