package prompt

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Pipeline turns a Request into an assembled, provider-tuned prompt
// payload. A Pipeline is immutable after construction and safe for
// concurrent use: the only shared state is the read-only catalog.
type Pipeline struct {
	catalog   *Catalog
	selector  *Selector
	populator *Populator
	optimizer *Optimizer
	limits    ProviderLimits
	logger    *slog.Logger
}

// New creates a Pipeline from the given configuration. Unset config
// fields fall back to the compiled-in defaults.
// Returns a CONFIG_VALIDATION_FAILED error for unusable configurations.
func New(cfg Config) (*Pipeline, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		catalog:   cfg.Catalog,
		selector:  NewSelector(cfg.Catalog),
		populator: NewPopulator(cfg.Catalog),
		optimizer: NewOptimizer(cfg.Rules),
		limits:    cfg.Limits,
		logger:    cfg.Logger,
	}, nil
}

// BuildPrompt runs the full pipeline: select applicable layers, populate
// each against the request, optimize the set for the target provider,
// and assemble the payload.
//
// Missing or partial request data never fails a build; the only fatal
// condition is an unrecognized provider identifier, rejected before any
// layer is populated so no partial result is produced.
func (p *Pipeline) BuildPrompt(req *Request) (*Result, error) {
	start := time.Now()

	provider := ""
	if req != nil {
		provider = req.Provider
	}
	if _, err := p.limits.Ceiling(provider); err != nil {
		return nil, err
	}

	ids := p.selector.Select(req)
	p.logger.Debug("layers selected",
		"count", len(ids),
		"provider", provider,
	)

	layers := make([]PopulatedLayer, 0, len(ids))
	for _, id := range ids {
		layer, err := p.populator.Populate(id, req)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	optimized, applied := p.optimizer.Optimize(layers, provider)
	p.logger.Debug("optimization complete",
		"rules_applied", len(applied),
		"tokens_before", totalTokens(layers),
		"tokens_after", totalTokens(optimized),
	)

	ordered := SortByPriority(optimized)
	payload := JoinLayers(ordered)

	result := &Result{
		Payload:     payload,
		Layers:      ordered,
		TotalTokens: EstimateTokens(payload),
		Applied:     applied,
		Metadata: BuildMetadata{
			BuildID:          uuid.NewString(),
			LayerCount:       len(ordered),
			Tier:             optimizationTier(applied),
			Provider:         provider,
			CompressionRatio: compressionRatio(req, ordered),
			Duration:         time.Since(start),
		},
	}

	p.logger.Info("prompt built",
		"build_id", result.Metadata.BuildID,
		"layers", result.Metadata.LayerCount,
		"tokens", result.TotalTokens,
		"tier", result.Metadata.Tier,
		"duration", result.Metadata.Duration,
	)

	return result, nil
}

// optimizationTier labels a build by the strongest optimization that
// fired: token-limit compression makes it aggressive, any other rule
// standard, none baseline.
func optimizationTier(applied []AppliedOptimization) string {
	if len(applied) == 0 {
		return TierBaseline
	}
	for _, a := range applied {
		if a.Name == "token-limit" {
			return TierAggressive
		}
	}
	return TierStandard
}

// compressionRatio reports the combined character length of the
// context-awareness layers over the raw JSON-serialized length of the
// context graph. Returns 0 when no context layer is present or the
// graph serializes to zero length.
func compressionRatio(req *Request, layers []PopulatedLayer) float64 {
	contextChars := 0
	for _, l := range layers {
		if l.Purpose == PurposeContextAwareness {
			contextChars += len(l.Content)
		}
	}
	if contextChars == 0 || req == nil || req.Context == nil {
		return 0
	}

	raw, err := json.Marshal(req.Context)
	if err != nil || len(raw) == 0 {
		return 0
	}

	return float64(contextChars) / float64(len(raw))
}
