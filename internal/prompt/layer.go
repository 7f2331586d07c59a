package prompt

import (
	"fmt"

	"github.com/blipee-dev/promptstack/internal/types"
)

// Purpose classifies what a layer contributes to the assembled prompt.
// Every template carries exactly one purpose tag.
type Purpose string

// Purpose constants define the closed set of layer purposes.
const (
	PurposeIdentity                Purpose = "identity"
	PurposeContextAwareness        Purpose = "context-awareness"
	PurposeDomainExpertise         Purpose = "domain-expertise"
	PurposeDataAccess              Purpose = "data-access"
	PurposeActionCapabilities      Purpose = "action-capabilities"
	PurposeCommunicationStyle      Purpose = "communication-style"
	PurposeOutputFormatting        Purpose = "output-formatting"
	PurposeSafetyConstraints       Purpose = "safety-constraints"
	PurposePerformanceOptimization Purpose = "performance-optimization"
)

var validPurposes = map[Purpose]bool{
	PurposeIdentity:                true,
	PurposeContextAwareness:        true,
	PurposeDomainExpertise:         true,
	PurposeDataAccess:              true,
	PurposeActionCapabilities:      true,
	PurposeCommunicationStyle:      true,
	PurposeOutputFormatting:        true,
	PurposeSafetyConstraints:       true,
	PurposePerformanceOptimization: true,
}

// IsValid checks if this purpose is a recognized valid purpose.
func (p Purpose) IsValid() bool {
	return validPurposes[p]
}

// InclusionRule names the condition under which a template qualifies for
// a request. The selector evaluates these rules; templates never evaluate
// themselves.
type InclusionRule string

// InclusionRule constants define the closed set of inclusion rules.
const (
	IncludeAlways                 InclusionRule = "always"
	IncludeIfAvailable            InclusionRule = "include-if-available"
	IncludeIfIntentMatches        InclusionRule = "include-if-intent-matches"
	IncludeIfDataRequested        InclusionRule = "include-if-data-requested"
	IncludeIfActionsAvailable     InclusionRule = "include-if-actions-available"
	IncludeIfUserProfileAvailable InclusionRule = "include-if-user-profile-available"
)

var validInclusionRules = map[InclusionRule]bool{
	IncludeAlways:                 true,
	IncludeIfAvailable:            true,
	IncludeIfIntentMatches:        true,
	IncludeIfDataRequested:        true,
	IncludeIfActionsAvailable:     true,
	IncludeIfUserProfileAvailable: true,
}

// IsValid checks if this inclusion rule is a recognized valid rule.
func (r InclusionRule) IsValid() bool {
	return validInclusionRules[r]
}

// mandatoryPurposes are included in every build regardless of request content.
var mandatoryPurposes = map[Purpose]bool{
	PurposeIdentity:          true,
	PurposeOutputFormatting:  true,
	PurposeSafetyConstraints: true,
}

// IsMandatory reports whether layers of this purpose must appear in every result.
func (p Purpose) IsMandatory() bool {
	return mandatoryPurposes[p]
}

// LayerTemplate is a catalog entry: one named, purpose-tagged block of
// prompt text with placeholder markers and conditional blocks.
// Templates are static; they are registered once and never mutated at
// request time.
type LayerTemplate struct {
	// ID is the unique identifier for this template (required)
	ID string `json:"id" yaml:"id"`

	// Name is a human-readable name for this template
	Name string `json:"name" yaml:"name"`

	// Purpose classifies the layer's contribution (required)
	Purpose Purpose `json:"purpose" yaml:"purpose"`

	// Priority determines render order (higher renders first)
	Priority int `json:"priority" yaml:"priority"`

	// Content is the raw template text. Placeholders use {{dotted.path}}
	// markers resolved against the request; conditional blocks use
	// {{#if predicate}}...{{/if}} guarded by a named predicate.
	Content string `json:"content" yaml:"content"`

	// Inclusion names the selector rule that decides whether this
	// template applies to a request (required)
	Inclusion InclusionRule `json:"inclusion" yaml:"inclusion"`

	// EstimatedTokens is the planning-time token cost of the raw content
	EstimatedTokens int `json:"estimated_tokens,omitempty" yaml:"estimated_tokens,omitempty"`
}

// Validate checks if the LayerTemplate has all required fields and valid values.
// Returns a types.Error if validation fails.
//
// Validation rules:
//   - ID must not be empty
//   - Purpose must be a valid purpose constant
//   - Inclusion must be a valid inclusion rule
//   - Content must not be empty
func (t *LayerTemplate) Validate() error {
	if t.ID == "" {
		return types.NewError(
			ErrCodeInvalidTemplate,
			"template ID cannot be empty",
		)
	}

	if !t.Purpose.IsValid() {
		return types.NewError(
			ErrCodeInvalidTemplate,
			fmt.Sprintf("invalid template purpose: %q", t.Purpose),
		)
	}

	if !t.Inclusion.IsValid() {
		return types.NewError(
			ErrCodeInvalidTemplate,
			fmt.Sprintf("invalid inclusion rule: %q", t.Inclusion),
		)
	}

	if t.Content == "" {
		return types.NewError(
			ErrCodeInvalidTemplate,
			"template content cannot be empty",
		)
	}

	return nil
}

// PopulatedLayer is a layer produced for a single request: the template's
// text with placeholders resolved and conditional blocks decided, plus a
// measured token count. Populated layers belong to one pipeline run and
// are discarded after assembly.
type PopulatedLayer struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Priority   int           `json:"priority"`
	Purpose    Purpose       `json:"purpose"`
	Content    string        `json:"content"`
	TokenCount int           `json:"token_count"`
	Inclusion  InclusionRule `json:"inclusion"`
}
