package prompt

import "strings"

// Conditional blocks use {{#if predicate}}...{{/if}} delimiters. The
// predicate names form a fixed, closed set tied to user communication
// style, detail level, expertise tier, and response type. An unknown
// predicate evaluates false: the block is removed, never surfaced as an
// error.
const (
	blockOpen  = "{{#if "
	blockClose = "{{/if}}"
)

// predicateFunc evaluates a named predicate against a request.
type predicateFunc func(req *Request) bool

// predicates is the closed set of block predicates. Adding a predicate
// here is the only way to extend the conditional vocabulary; templates
// cannot define their own.
var predicates = map[string]predicateFunc{
	"technical_style": func(req *Request) bool {
		return req.User != nil && req.User.CommunicationStyle == "technical"
	},
	"formal_style": func(req *Request) bool {
		return req.User != nil && req.User.CommunicationStyle == "formal"
	},
	"casual_style": func(req *Request) bool {
		return req.User != nil && req.User.CommunicationStyle == "casual"
	},
	"concise_detail": func(req *Request) bool {
		return req.User != nil && req.User.DetailLevel == "concise"
	},
	"comprehensive_detail": func(req *Request) bool {
		return req.User != nil && req.User.DetailLevel == "comprehensive"
	},
	"expert_user": func(req *Request) bool {
		return req.User != nil && req.User.ExpertiseTier == "expert"
	},
	"beginner_user": func(req *Request) bool {
		return req.User != nil && req.User.ExpertiseTier == "beginner"
	},
	"report_response": func(req *Request) bool {
		return req.ResponseType == "report"
	},
	"actionable_response": func(req *Request) bool {
		return req.ResponseType == "actionable"
	},
	"conversational_response": func(req *Request) bool {
		return req.ResponseType == "conversational"
	},
	"analytical_mode": func(req *Request) bool {
		return req.Intent != nil && req.Intent.ResponseMode == "analytical"
	},
}

// EvaluatePredicate evaluates a named block predicate against the request.
// Unknown predicate names evaluate false.
func EvaluatePredicate(name string, req *Request) bool {
	fn, ok := predicates[name]
	if !ok || req == nil {
		return false
	}
	return fn(req)
}

// renderConditionals removes or keeps {{#if name}}...{{/if}} blocks in a
// single left-to-right scan. A true predicate keeps the block's inner
// text; a false or unknown predicate removes the block including its
// delimiters. Blocks do not nest. Unterminated markers are left as
// literal text rather than treated as errors.
func renderConditionals(text string, req *Request) string {
	var b strings.Builder

	for {
		start := strings.Index(text, blockOpen)
		if start < 0 {
			b.WriteString(text)
			break
		}

		b.WriteString(text[:start])
		rest := text[start+len(blockOpen):]

		nameEnd := strings.Index(rest, "}}")
		if nameEnd < 0 {
			b.WriteString(text[start:])
			break
		}

		name := strings.TrimSpace(rest[:nameEnd])
		body := rest[nameEnd+2:]

		end := strings.Index(body, blockClose)
		if end < 0 {
			b.WriteString(text[start:])
			break
		}

		if EvaluatePredicate(name, req) {
			b.WriteString(body[:end])
		}

		text = body[end+len(blockClose):]
	}

	return b.String()
}
