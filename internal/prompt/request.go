package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// ContextGraph holds the pre-fetched context for a request, organized
// into optional categories. The pipeline never fetches data itself; the
// caller populates whatever categories it has.
type ContextGraph struct {
	Sustainability map[string]any `json:"sustainability,omitempty"`
	Financial      map[string]any `json:"financial,omitempty"`
	Operational    map[string]any `json:"operational,omitempty"`
	Environmental  map[string]any `json:"environmental,omitempty"`
	Network        map[string]any `json:"network,omitempty"`
}

// NewContextGraph creates a new empty context graph with initialized maps.
func NewContextGraph() *ContextGraph {
	return &ContextGraph{
		Sustainability: make(map[string]any),
		Financial:      make(map[string]any),
		Operational:    make(map[string]any),
		Environmental:  make(map[string]any),
		Network:        make(map[string]any),
	}
}

// category returns the named category map, or nil if the name is not a category.
func (g *ContextGraph) category(name string) map[string]any {
	switch name {
	case "sustainability":
		return g.Sustainability
	case "financial":
		return g.Financial
	case "operational":
		return g.Operational
	case "environmental":
		return g.Environmental
	case "network":
		return g.Network
	default:
		return nil
	}
}

// Get retrieves a value by dot-notation path from the graph.
// The first part of the path names the category and the remaining parts
// navigate the nested structure.
//
// Examples:
//   - "sustainability.total_emissions" -> Sustainability["total_emissions"]
//   - "financial.budget.remaining" -> Financial["budget"]["remaining"]
func (g *ContextGraph) Get(path string) (any, bool) {
	if g == nil || path == "" {
		return nil, false
	}

	parts := strings.SplitN(path, ".", 2)
	root := g.category(parts[0])
	if root == nil {
		return nil, false
	}

	// If only the category name was provided, return the whole map
	if len(parts) == 1 {
		return root, true
	}

	return ResolvePath(root, parts[1])
}

// IsRich reports whether the graph carries simultaneous sustainability,
// financial, and operational data. Partial context does not qualify.
func (g *ContextGraph) IsRich() bool {
	if g == nil {
		return false
	}
	return len(g.Sustainability) > 0 && len(g.Financial) > 0 && len(g.Operational) > 0
}

// Intent is the caller's classification of the user message.
type Intent struct {
	Category     string `json:"category"`
	Urgency      string `json:"urgency,omitempty"`
	ResponseMode string `json:"response_mode,omitempty"`
}

// UserProfile describes who is asking and how they prefer to be answered.
type UserProfile struct {
	Role               string `json:"role,omitempty"`
	ExpertiseTier      string `json:"expertise_tier,omitempty"`
	CommunicationStyle string `json:"communication_style,omitempty"`
	DetailLevel        string `json:"detail_level,omitempty"`
}

// OrganizationProfile describes the organization the request concerns.
type OrganizationProfile struct {
	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
	Maturity string `json:"maturity,omitempty"`
}

// Request is the sole input to the pipeline. It is owned by the caller
// and treated as immutable: no stage mutates it, and concurrent builds
// over the same Request are safe.
type Request struct {
	// Message is the raw user message
	Message string `json:"message"`

	// Context is the pre-populated context graph (optional)
	Context *ContextGraph `json:"context,omitempty"`

	// Intent is the classified intent (optional)
	Intent *Intent `json:"intent,omitempty"`

	// User is the user profile (optional)
	User *UserProfile `json:"user,omitempty"`

	// Organization is the organization profile (optional)
	Organization *OrganizationProfile `json:"organization,omitempty"`

	// Provider identifies the downstream language-model target
	Provider string `json:"provider"`

	// ResponseType is the desired response shape (e.g. "report", "actionable")
	ResponseType string `json:"response_type,omitempty"`

	// AvailableActions lists actions the downstream model may invoke
	AvailableActions []string `json:"available_actions,omitempty"`

	// ExtraInstructions carries free-form caller instructions
	ExtraInstructions string `json:"extra_instructions,omitempty"`
}

// ResolvePath resolves a dot-notation path in a nested map.
// For example, ResolvePath(m, "budget.remaining") traverses:
//
//	m["budget"] -> ["remaining"]
//
// Returns the resolved value and true if found, or nil and false if any
// part of the path doesn't exist or is not a map.
func ResolvePath(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	parts := strings.Split(path, ".")
	current := any(m)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, false
		}

		if i == len(parts)-1 {
			return value, true
		}

		current = value
	}

	return nil, false
}

// Resolve resolves a placeholder path against the request. The first
// path segment selects the root: one of the five context categories, or
// "user", "organization", "intent", "message", "actions",
// "extra_instructions". A path that cannot be resolved returns
// (nil, false); resolution never errors.
func (r *Request) Resolve(path string) (any, bool) {
	if r == nil || path == "" {
		return nil, false
	}

	parts := strings.SplitN(path, ".", 2)
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}

	switch parts[0] {
	case "sustainability", "financial", "operational", "environmental", "network":
		if r.Context == nil {
			return nil, false
		}
		return r.Context.Get(path)
	case "user":
		return resolveUserField(r.User, rest)
	case "organization":
		return resolveOrganizationField(r.Organization, rest)
	case "intent":
		return resolveIntentField(r.Intent, rest)
	case "message":
		if rest != "" {
			return nil, false
		}
		return r.Message, true
	case "actions":
		if rest != "" || len(r.AvailableActions) == 0 {
			return nil, false
		}
		return r.AvailableActions, true
	case "extra_instructions":
		if rest != "" || r.ExtraInstructions == "" {
			return nil, false
		}
		return r.ExtraInstructions, true
	default:
		return nil, false
	}
}

func resolveUserField(u *UserProfile, field string) (any, bool) {
	if u == nil {
		return nil, false
	}
	switch field {
	case "role":
		return u.Role, true
	case "expertise_tier":
		return u.ExpertiseTier, true
	case "communication_style":
		return u.CommunicationStyle, true
	case "detail_level":
		return u.DetailLevel, true
	default:
		return nil, false
	}
}

func resolveOrganizationField(o *OrganizationProfile, field string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch field {
	case "name":
		return o.Name, true
	case "industry":
		return o.Industry, true
	case "size":
		return o.Size, true
	case "maturity":
		return o.Maturity, true
	default:
		return nil, false
	}
}

func resolveIntentField(i *Intent, field string) (any, bool) {
	if i == nil {
		return nil, false
	}
	switch field {
	case "category":
		return i.Category, true
	case "urgency":
		return i.Urgency, true
	case "response_mode":
		return i.ResponseMode, true
	default:
		return nil, false
	}
}

// FormatValue renders a resolved value as prompt text. Strings pass
// through, string slices join with ", ", numbers drop trailing zeros,
// and nil renders empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}
