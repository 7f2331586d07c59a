package prompt

// Supported provider identifiers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderDeepSeek  = "deepseek"
)

// ProviderLimits maps provider identifiers to their token ceilings.
// The set of keys defines the providers the pipeline recognizes; an
// identifier without an entry is a hard error, never a silent default.
type ProviderLimits map[string]int

// DefaultProviderLimits returns the compiled-in token ceilings for the
// supported providers.
func DefaultProviderLimits() ProviderLimits {
	return ProviderLimits{
		ProviderOpenAI:    128000,
		ProviderAnthropic: 200000,
		ProviderDeepSeek:  64000,
	}
}

// Ceiling returns the token ceiling for a provider.
// Returns ErrCodeUnknownProvider if the provider has no configured entry.
func (l ProviderLimits) Ceiling(provider string) (int, error) {
	ceiling, exists := l[provider]
	if !exists {
		return 0, NewUnknownProviderError(provider)
	}
	return ceiling, nil
}
