package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextGraph_Get(t *testing.T) {
	g := &ContextGraph{
		Sustainability: map[string]any{
			"total_emissions": 1240.5,
			"targets": map[string]any{
				"scope1": map[string]any{"year": 2030},
			},
		},
		Financial: map[string]any{"budget": 500000},
	}

	tests := []struct {
		name     string
		path     string
		expected any
		found    bool
	}{
		{name: "top-level value", path: "sustainability.total_emissions", expected: 1240.5, found: true},
		{name: "nested value", path: "sustainability.targets.scope1.year", expected: 2030, found: true},
		{name: "other category", path: "financial.budget", expected: 500000, found: true},
		{name: "missing key", path: "sustainability.nothing", expected: nil, found: false},
		{name: "missing category content", path: "operational.sites", expected: nil, found: false},
		{name: "unknown category", path: "bogus.key", expected: nil, found: false},
		{name: "path through non-map", path: "sustainability.total_emissions.deeper", expected: nil, found: false},
		{name: "empty path", path: "", expected: nil, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := g.Get(tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContextGraph_Get_CategoryOnly(t *testing.T) {
	g := &ContextGraph{Financial: map[string]any{"budget": 1}}

	got, found := g.Get("financial")
	assert.True(t, found)
	assert.Equal(t, map[string]any{"budget": 1}, got)
}

func TestContextGraph_Get_NilGraph(t *testing.T) {
	var g *ContextGraph
	_, found := g.Get("sustainability.total_emissions")
	assert.False(t, found)
}

func TestContextGraph_IsRich(t *testing.T) {
	tests := []struct {
		name     string
		graph    *ContextGraph
		expected bool
	}{
		{
			name: "all three sections",
			graph: &ContextGraph{
				Sustainability: map[string]any{"a": 1},
				Financial:      map[string]any{"b": 2},
				Operational:    map[string]any{"c": 3},
			},
			expected: true,
		},
		{
			name: "environmental does not substitute",
			graph: &ContextGraph{
				Sustainability: map[string]any{"a": 1},
				Financial:      map[string]any{"b": 2},
				Environmental:  map[string]any{"c": 3},
			},
			expected: false,
		},
		{name: "nil graph", graph: nil, expected: false},
		{name: "empty graph", graph: &ContextGraph{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.graph.IsRich())
		})
	}
}

func TestRequest_Resolve(t *testing.T) {
	req := &Request{
		Message: "hello",
		Context: &ContextGraph{
			Network: map[string]any{"suppliers": 42},
		},
		Intent:            &Intent{Category: "compliance_reporting", Urgency: "high", ResponseMode: "analytical"},
		User:              &UserProfile{Role: "auditor", ExpertiseTier: "expert", CommunicationStyle: "formal", DetailLevel: "concise"},
		Organization:      &OrganizationProfile{Name: "Acme", Industry: "retail", Size: "mid", Maturity: "developing"},
		AvailableActions:  []string{"export_report", "create_target"},
		ExtraInstructions: "answer in Portuguese",
	}

	tests := []struct {
		path     string
		expected any
		found    bool
	}{
		{"network.suppliers", 42, true},
		{"user.role", "auditor", true},
		{"user.expertise_tier", "expert", true},
		{"user.communication_style", "formal", true},
		{"user.detail_level", "concise", true},
		{"organization.name", "Acme", true},
		{"organization.maturity", "developing", true},
		{"intent.category", "compliance_reporting", true},
		{"intent.urgency", "high", true},
		{"intent.response_mode", "analytical", true},
		{"message", "hello", true},
		{"actions", []string{"export_report", "create_target"}, true},
		{"extra_instructions", "answer in Portuguese", true},
		{"user.shoe_size", nil, false},
		{"organization", nil, false},
		{"message.length", nil, false},
		{"unknown.root", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, found := req.Resolve(tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRequest_Resolve_MissingSections(t *testing.T) {
	req := &Request{}

	for _, path := range []string{
		"sustainability.total_emissions",
		"user.role",
		"organization.name",
		"intent.category",
		"actions",
		"extra_instructions",
	} {
		_, found := req.Resolve(path)
		assert.False(t, found, "path %q should not resolve on an empty request", path)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string", value: "text", expected: "text"},
		{name: "string slice", value: []string{"a", "b"}, expected: "a, b"},
		{name: "float drops trailing zeros", value: 1240.50, expected: "1240.5"},
		{name: "whole float", value: 500000.0, expected: "500000"},
		{name: "int", value: 42, expected: "42"},
		{name: "bool", value: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}
