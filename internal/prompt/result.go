package prompt

import "time"

// Optimization tier labels reported in build metadata.
const (
	TierBaseline   = "baseline"   // no optimization rule fired
	TierStandard   = "standard"   // provider-preference rules only
	TierAggressive = "aggressive" // token-limit compression fired
)

// BuildMetadata carries observability data about one pipeline run.
type BuildMetadata struct {
	// BuildID uniquely identifies this build
	BuildID string `json:"build_id"`

	// LayerCount is the number of layers in the assembled payload
	LayerCount int `json:"layer_count"`

	// Tier labels how aggressively the build was optimized
	Tier string `json:"tier"`

	// Provider is the target provider the build was optimized for
	Provider string `json:"provider"`

	// CompressionRatio is the combined character length of the
	// context-awareness layers over the raw JSON-serialized length of
	// the context graph. Zero when no context layer was selected or the
	// graph serializes to zero length. Reporting-only; it drives no
	// optimizer decision.
	CompressionRatio float64 `json:"compression_ratio"`

	// Duration is the wall-clock time from pipeline entry to result
	// construction
	Duration time.Duration `json:"duration"`
}

// Result is the pipeline's output: the assembled payload plus the
// post-optimization layers in render order and structured metadata.
// The caller forwards Payload to the downstream model keyed by the same
// provider used during optimization.
type Result struct {
	// Payload is the final assembled prompt string
	Payload string `json:"payload"`

	// Layers are the post-optimization populated layers in render order
	Layers []PopulatedLayer `json:"layers"`

	// TotalTokens is the estimated token count of the payload
	TotalTokens int `json:"total_tokens"`

	// Applied is the ordered trace of optimizations that fired
	Applied []AppliedOptimization `json:"applied,omitempty"`

	// Metadata carries build observability data
	Metadata BuildMetadata `json:"metadata"`
}
