package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePredicate(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		req       *Request
		expected  bool
	}{
		{
			name:      "technical style - match",
			predicate: "technical_style",
			req:       &Request{User: &UserProfile{CommunicationStyle: "technical"}},
			expected:  true,
		},
		{
			name:      "technical style - different style",
			predicate: "technical_style",
			req:       &Request{User: &UserProfile{CommunicationStyle: "formal"}},
			expected:  false,
		},
		{
			name:      "technical style - no user profile",
			predicate: "technical_style",
			req:       &Request{},
			expected:  false,
		},
		{
			name:      "formal style - match",
			predicate: "formal_style",
			req:       &Request{User: &UserProfile{CommunicationStyle: "formal"}},
			expected:  true,
		},
		{
			name:      "concise detail - match",
			predicate: "concise_detail",
			req:       &Request{User: &UserProfile{DetailLevel: "concise"}},
			expected:  true,
		},
		{
			name:      "comprehensive detail - match",
			predicate: "comprehensive_detail",
			req:       &Request{User: &UserProfile{DetailLevel: "comprehensive"}},
			expected:  true,
		},
		{
			name:      "expert user - match",
			predicate: "expert_user",
			req:       &Request{User: &UserProfile{ExpertiseTier: "expert"}},
			expected:  true,
		},
		{
			name:      "beginner user - match",
			predicate: "beginner_user",
			req:       &Request{User: &UserProfile{ExpertiseTier: "beginner"}},
			expected:  true,
		},
		{
			name:      "report response - match",
			predicate: "report_response",
			req:       &Request{ResponseType: "report"},
			expected:  true,
		},
		{
			name:      "actionable response - match",
			predicate: "actionable_response",
			req:       &Request{ResponseType: "actionable"},
			expected:  true,
		},
		{
			name:      "analytical mode - match",
			predicate: "analytical_mode",
			req:       &Request{Intent: &Intent{ResponseMode: "analytical"}},
			expected:  true,
		},
		{
			name:      "analytical mode - no intent",
			predicate: "analytical_mode",
			req:       &Request{},
			expected:  false,
		},
		{
			name:      "unknown predicate evaluates false",
			predicate: "no_such_predicate",
			req:       &Request{User: &UserProfile{CommunicationStyle: "technical"}},
			expected:  false,
		},
		{
			name:      "nil request evaluates false",
			predicate: "report_response",
			req:       nil,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluatePredicate(tt.predicate, tt.req))
		})
	}
}

func TestRenderConditionals(t *testing.T) {
	technical := &Request{User: &UserProfile{CommunicationStyle: "technical"}}

	tests := []struct {
		name     string
		text     string
		req      *Request
		expected string
	}{
		{
			name:     "no blocks passes through",
			text:     "plain text with {{a.placeholder}}",
			req:      technical,
			expected: "plain text with {{a.placeholder}}",
		},
		{
			name:     "true predicate keeps inner text",
			text:     "before {{#if technical_style}}inner{{/if}} after",
			req:      technical,
			expected: "before inner after",
		},
		{
			name:     "false predicate removes block and delimiters",
			text:     "before {{#if formal_style}}inner{{/if}} after",
			req:      technical,
			expected: "before  after",
		},
		{
			name:     "unknown predicate removes block",
			text:     "before {{#if bogus}}inner{{/if}} after",
			req:      technical,
			expected: "before  after",
		},
		{
			name:     "multiple blocks decided independently",
			text:     "{{#if technical_style}}yes{{/if}}|{{#if formal_style}}no{{/if}}|{{#if technical_style}}again{{/if}}",
			req:      technical,
			expected: "yes||again",
		},
		{
			name:     "multiline block body",
			text:     "head\n{{#if technical_style}}line one\nline two{{/if}}\ntail",
			req:      technical,
			expected: "head\nline one\nline two\ntail",
		},
		{
			name:     "unterminated block left as literal text",
			text:     "before {{#if technical_style}}never closed",
			req:      technical,
			expected: "before {{#if technical_style}}never closed",
		},
		{
			name:     "whitespace around predicate name tolerated",
			text:     "{{#if  technical_style }}x{{/if}}",
			req:      technical,
			expected: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderConditionals(tt.text, tt.req))
		})
	}
}
