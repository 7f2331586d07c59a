package prompt

import "strings"

// Populator renders a catalog template into a PopulatedLayer for one
// request. Population is deterministic: the same template and request
// always yield identical text.
type Populator struct {
	catalog *Catalog
}

// NewPopulator creates a populator over the given catalog.
func NewPopulator(catalog *Catalog) *Populator {
	return &Populator{catalog: catalog}
}

// Populate renders the identified template against the request:
// conditional blocks are decided first, then every {{dotted.path}}
// placeholder is resolved. An unresolvable path renders as an empty
// string; the raw marker never survives into the output. The only error
// is an unknown template ID, which is catalog misuse rather than a
// request-data problem.
func (p *Populator) Populate(templateID string, req *Request) (PopulatedLayer, error) {
	t, err := p.catalog.Get(templateID)
	if err != nil {
		return PopulatedLayer{}, err
	}

	content := renderConditionals(t.Content, req)
	content = substitutePlaceholders(content, req)

	return PopulatedLayer{
		ID:         t.ID,
		Name:       t.Name,
		Priority:   t.Priority,
		Purpose:    t.Purpose,
		Content:    content,
		TokenCount: EstimateTokens(content),
		Inclusion:  t.Inclusion,
	}, nil
}

// substitutePlaceholders replaces every {{dotted.path}} marker with the
// value resolved from the request, or an empty string when the path does
// not resolve. Runs after conditional blocks are decided, so no block
// delimiters remain in the text. An unterminated marker is left as
// literal text.
func substitutePlaceholders(text string, req *Request) string {
	var b strings.Builder

	for {
		start := strings.Index(text, "{{")
		if start < 0 {
			b.WriteString(text)
			break
		}

		end := strings.Index(text[start:], "}}")
		if end < 0 {
			b.WriteString(text)
			break
		}

		b.WriteString(text[:start])

		path := strings.TrimSpace(text[start+2 : start+end])
		if value, ok := req.Resolve(path); ok {
			b.WriteString(FormatValue(value))
		}

		text = text[start+end+2:]
	}

	return b.String()
}
