package prompt

import "strings"

// intentWhitelist holds the intent categories that qualify a request for
// the domain-expertise layer.
var intentWhitelist = map[string]bool{
	"emissions_calculation": true,
	"compliance_reporting":  true,
	"target_management":     true,
	"energy_optimization":   true,
}

// Selector decides which catalog templates apply to a request. Selection
// is driven by each template's inclusion rule; missing optional request
// fields never error, they simply fail the rule.
type Selector struct {
	catalog *Catalog
}

// NewSelector creates a selector over the given catalog.
func NewSelector(catalog *Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select returns the IDs of all templates whose inclusion rule is
// satisfied by the request, in catalog priority order. Mandatory layers
// (rule "always") are included regardless of request content.
func (s *Selector) Select(req *Request) []string {
	var ids []string
	for _, t := range s.catalog.List() {
		if ruleSatisfied(t.Inclusion, req) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// ruleSatisfied evaluates one inclusion rule against the request.
// Unknown rules (unreachable for validated templates) evaluate false.
func ruleSatisfied(rule InclusionRule, req *Request) bool {
	if req == nil {
		return rule == IncludeAlways
	}

	switch rule {
	case IncludeAlways:
		return true
	case IncludeIfAvailable:
		return req.Context.IsRich()
	case IncludeIfIntentMatches:
		return req.Intent != nil && intentWhitelist[req.Intent.Category]
	case IncludeIfDataRequested:
		if req.Intent == nil {
			return false
		}
		return req.Intent.ResponseMode == "analytical" ||
			strings.Contains(req.Intent.Category, "data")
	case IncludeIfActionsAvailable:
		return len(req.AvailableActions) > 0
	case IncludeIfUserProfileAvailable:
		return req.User != nil
	default:
		return false
	}
}
