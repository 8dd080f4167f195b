package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CompletionClient is the prompt-in/text-out contract with the external
// text-completion provider.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SentinelInvalidCity is the token the validation prompt asks the provider to
// return when the input is not a recognizable real-world place.
const SentinelInvalidCity = "INVALID_CITY"

// ErrUnknownDestination signals that a city could not be resolved to a real
// place. Provider failures on the validation call collapse into this error as
// well; the decision is local and never surfaces as a system fault.
var ErrUnknownDestination = errors.New("unknown destination")

// CityResolver canonicalizes free-text city input. Known cities are resolved
// from the static index without any network call; unknown ones are validated
// through the completion provider.
type CityResolver struct {
	ref    ReferenceData
	client CompletionClient
}

// NewCityResolver creates a resolver over the given tables and provider.
func NewCityResolver(ref ReferenceData, client CompletionClient) *CityResolver {
	return &CityResolver{ref: ref, client: client}
}

// Resolve returns the canonical display name for raw city input, or
// ErrUnknownDestination when it cannot name a real place.
func (cr *CityResolver) Resolve(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrUnknownDestination
	}

	if _, ok := cr.ref.Cities[NormalizeCity(raw)]; ok {
		return TitleCase(raw), nil
	}

	prompt := fmt.Sprintf(
		"Is %q a real city or travel destination? "+
			"Reply with ONLY the corrected real-world city name, "+
			"or reply with exactly %s if it is not a real place. No other text.",
		raw, SentinelInvalidCity,
	)

	resp, err := cr.client.Complete(ctx, prompt)
	if err != nil {
		return "", ErrUnknownDestination
	}
	resp = strings.TrimSpace(resp)
	if resp == "" || strings.EqualFold(resp, SentinelInvalidCity) {
		return "", ErrUnknownDestination
	}
	return resp, nil
}

// TitleCase capitalizes each space-separated word of a city name.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
