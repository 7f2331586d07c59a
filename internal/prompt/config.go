package prompt

import (
	"log/slog"

	"github.com/blipee-dev/promptstack/internal/types"
)

// Config is the explicit, immutable configuration for a Pipeline. It is
// constructed once at startup and passed to New; the pipeline holds no
// hidden global state, so tests can substitute catalogs, rules, and
// provider limits freely.
type Config struct {
	// Catalog is the layer template library. Defaults to BuiltinCatalog.
	Catalog *Catalog

	// Rules is the optimization rule set. Defaults to BuiltinRules over
	// the configured limits.
	Rules []OptimizationRule

	// Limits maps provider identifiers to token ceilings. Defaults to
	// DefaultProviderLimits.
	Limits ProviderLimits

	// Logger receives stage-boundary structured logs. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// ApplyDefaults fills unset fields with the compiled-in defaults.
func (c *Config) ApplyDefaults() {
	if c.Limits == nil {
		c.Limits = DefaultProviderLimits()
	}
	if c.Catalog == nil {
		c.Catalog = BuiltinCatalog()
	}
	if c.Rules == nil {
		c.Rules = BuiltinRules(c.Limits)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Catalog == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"catalog must not be nil")
	}
	if len(c.Limits) == 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"at least one provider limit must be configured")
	}
	for _, rule := range c.Rules {
		if rule.Trigger == nil {
			return types.NewError(types.CONFIG_VALIDATION_FAILED,
				"optimization rule "+rule.Name+" has no trigger")
		}
	}
	return nil
}
