package llm

import (
	"context"
	"errors"
)

// FallbackProvider is a decorator that retries a failed call once against a
// second provider. The first tier is the fast/cheap model; the second is a
// general-purpose model sent the exact same request.
//
// Only transport-class failures cross tiers: unavailable, rate-limited,
// empty content, or unclassified errors. A schema/parse failure
// (ErrInvalidResponse) means the oracle answered with bad content — a
// different provider given the same prompt is no more likely to parse, and
// silently swapping judgments would corrupt the mastery signal, so it
// surfaces as-is. When both tiers fail the caller gets
// ErrProviderUnavailable wrapping the second tier's error.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

// WithFallback wraps primary with a one-shot fallback to secondary.
// A nil secondary returns primary unchanged.
func WithFallback(primary, secondary Provider) Provider {
	if secondary == nil {
		return primary
	}
	return &FallbackProvider{primary: primary, secondary: secondary}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}

	if !crossesTiers(err) {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	resp, err2 := f.secondary.Generate(ctx, req)
	if err2 == nil {
		return resp, nil
	}
	if !crossesTiers(err2) {
		// e.g. the secondary produced schema-invalid content.
		return nil, err2
	}

	return nil, &ErrProviderUnavailable{Err: err2}
}

// ModelID reports the primary tier's model.
func (f *FallbackProvider) ModelID() string {
	return f.primary.ModelID()
}

// crossesTiers reports whether an error justifies trying the second tier.
func crossesTiers(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// Unavailable, rate-limited, empty, and unclassified network errors
	// all warrant one attempt on the other provider.
	return true
}
