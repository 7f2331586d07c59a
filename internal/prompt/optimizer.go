package prompt

import (
	"sort"
	"strings"
)

// Action names the transformation an optimization rule applies.
type Action string

// Action constants define the closed set of optimization actions.
const (
	ActionCompressContext       Action = "compress-context"
	ActionSimplifyLanguage      Action = "simplify-language"
	ActionEnrichContext         Action = "enrich-context"
	ActionStructureForFunctions Action = "structure-for-functions"
)

// OptimizationRule is a named transformation with a trigger predicate
// over (total token count, target provider). Rules are static and
// ordered by priority; multiple rules may fire in one run.
type OptimizationRule struct {
	// Name identifies the rule in the applied-optimization trace
	Name string

	// Description is the human-readable account of what the rule did
	Description string

	// Priority orders rule evaluation (higher evaluates first)
	Priority int

	// QualityImpact is a qualitative score of the transformation's
	// effect on response quality (negative for lossy compression,
	// positive for enrichment)
	QualityImpact float64

	// Trigger decides whether the rule fires for the current layer set
	Trigger func(totalTokens int, provider string) bool

	// Action selects the transformation to apply
	Action Action
}

// AppliedOptimization records one rule application in a build's trace.
type AppliedOptimization struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	QualityImpact float64 `json:"quality_impact"`
}

// Optimizer applies the rule set to a populated layer set. Optimization
// is a pure fold: each firing rule maps the current layer set to a new
// one, so later rules see earlier rules' output and the applied trace is
// exactly the fold's history. The optimizer never removes a layer and
// never reorders layers.
type Optimizer struct {
	rules []OptimizationRule
}

// NewOptimizer creates an optimizer over the given rules, sorted by
// priority descending. The rule slice is copied; the caller's slice is
// not retained.
func NewOptimizer(rules []OptimizationRule) *Optimizer {
	sorted := make([]OptimizationRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &Optimizer{rules: sorted}
}

// Optimize folds the rule list over the layer set. Each rule's trigger
// sees the token total of the current (possibly already transformed)
// layer set. Returns the final layer set and the trace of applied rules.
func (o *Optimizer) Optimize(layers []PopulatedLayer, provider string) ([]PopulatedLayer, []AppliedOptimization) {
	current := make([]PopulatedLayer, len(layers))
	copy(current, layers)

	var applied []AppliedOptimization
	for _, rule := range o.rules {
		if !rule.Trigger(totalTokens(current), provider) {
			continue
		}

		current = applyAction(rule.Action, current)
		applied = append(applied, AppliedOptimization{
			Name:          rule.Name,
			Description:   rule.Description,
			QualityImpact: rule.QualityImpact,
		})
	}

	return current, applied
}

// applyAction maps a layer set to a new layer set under one action.
// Transformed layers get their token counts remeasured; untouched layers
// pass through unchanged.
func applyAction(action Action, layers []PopulatedLayer) []PopulatedLayer {
	out := make([]PopulatedLayer, len(layers))
	copy(out, layers)

	for i := range out {
		var content string
		switch action {
		case ActionCompressContext:
			if out[i].Purpose != PurposeContextAwareness {
				continue
			}
			content = compressContext(out[i].Content)
		case ActionSimplifyLanguage:
			content = simplifyLanguage(out[i].Content)
		case ActionEnrichContext:
			if out[i].Purpose != PurposeContextAwareness {
				continue
			}
			content = out[i].Content + reasoningFrameworkNote
		case ActionStructureForFunctions:
			if out[i].Purpose != PurposeActionCapabilities {
				continue
			}
			content = out[i].Content + functionCallingHint
		default:
			continue
		}

		if content == out[i].Content {
			continue
		}
		out[i].Content = content
		out[i].TokenCount = EstimateTokens(content)
	}

	return out
}

// compressContext strips non-essential lines from a context layer,
// keeping only lines that carry total or risk markers.
func compressContext(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "total") || strings.Contains(lower, "risk") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// simplifications maps verbose terms to plainer synonyms, applied in order.
var simplifications = []struct {
	verbose string
	plain   string
}{
	{"in order to", "to"},
	{"utilize", "use"},
	{"approximately", "about"},
	{"demonstrate", "show"},
	{"facilitate", "help"},
	{"subsequently", "then"},
	{"additionally", "also"},
	{"comprehensive", "complete"},
}

// simplifyLanguage substitutes verbose terms for plainer synonyms across
// the whole layer text.
func simplifyLanguage(text string) string {
	for _, s := range simplifications {
		text = strings.ReplaceAll(text, s.verbose, s.plain)
	}
	return text
}

// reasoningFrameworkNote is appended to context-awareness layers for
// providers that reward explicit reasoning scaffolds.
const reasoningFrameworkNote = "\n\nWhen reasoning about this context, work step by step: " +
	"identify the relevant figures, compare them against targets and prior periods, " +
	"then state the conclusion before any recommendation."

// functionCallingHint is appended to action-capabilities layers for
// providers with a function-calling API.
const functionCallingHint = "\n\nWhen an available action matches the user's request, " +
	"respond with a function call naming the action and its parameters " +
	"instead of describing the action in prose."

// BuiltinRules returns the compiled-in optimization rule set, closed
// over the given provider limits. The token-limit rule outranks the
// provider-preference rules so compression happens before any
// enrichment is measured.
func BuiltinRules(limits ProviderLimits) []OptimizationRule {
	return []OptimizationRule{
		{
			Name:          "token-limit",
			Description:   "compressed context layers to fit the provider token ceiling",
			Priority:      100,
			QualityImpact: -0.15,
			Action:        ActionCompressContext,
			Trigger: func(total int, provider string) bool {
				ceiling, err := limits.Ceiling(provider)
				if err != nil {
					return false
				}
				return float64(total) > float64(ceiling)*0.8
			},
		},
		{
			Name:          "openai-functions",
			Description:   "added function-calling structure to action layers",
			Priority:      50,
			QualityImpact: 0.05,
			Action:        ActionStructureForFunctions,
			Trigger: func(total int, provider string) bool {
				return provider == ProviderOpenAI
			},
		},
		{
			Name:          "anthropic-reasoning",
			Description:   "enriched context layers with a reasoning framework",
			Priority:      50,
			QualityImpact: 0.1,
			Action:        ActionEnrichContext,
			Trigger: func(total int, provider string) bool {
				return provider == ProviderAnthropic
			},
		},
		{
			Name:          "deepseek-simplify",
			Description:   "substituted plainer synonyms for verbose terms",
			Priority:      50,
			QualityImpact: -0.05,
			Action:        ActionSimplifyLanguage,
			Trigger: func(total int, provider string) bool {
				return provider == ProviderDeepSeek
			},
		},
	}
}
