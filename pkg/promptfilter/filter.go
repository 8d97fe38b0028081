// Package promptfilter classifies AI tutor prompts as academic or not using
// keyword and pattern heuristics. It runs before every LLM call and is pure:
// no I/O, no state, deterministic for a given message.
package promptfilter

import (
	"regexp"
	"strings"
)

const (
	// RejectionMessage is shown to the user when a prompt is off-topic.
	RejectionMessage = "I can only help with academic topics. Try asking about your subjects, coursework, or study material."

	acceptThreshold = 0.3
	minLength       = 3
)

// Verdict is the outcome of classifying one prompt.
type Verdict struct {
	Accepted       bool
	Reason         string
	CleanedMessage string
	Confidence     float64
}

type Filter struct {
	patterns     []*regexp.Regexp
	questionWord *regexp.Regexp
}

func New() *Filter {
	patterns := make([]*regexp.Regexp, len(academicPatterns))
	for i, p := range academicPatterns {
		patterns[i] = regexp.MustCompile(p)
	}
	return &Filter{
		patterns:     patterns,
		questionWord: regexp.MustCompile(questionWordPattern),
	}
}

// Check classifies a prompt. hasContext reports whether the caller resolved a
// content item for this conversation; such prompts are accepted without
// scoring ("ok", "why?", follow-ups) as long as they clear the deny list.
func (f *Filter) Check(message string, hasContext bool) Verdict {
	cleaned := strings.TrimSpace(message)
	lower := strings.ToLower(cleaned)

	// The deny list wins over everything, including the context bypass.
	for _, kw := range denyKeywords {
		if strings.Contains(lower, kw) {
			return Verdict{
				Accepted:       false,
				Reason:         "disallowed topic",
				CleanedMessage: cleaned,
				Confidence:     1.0,
			}
		}
	}

	if hasContext {
		return Verdict{
			Accepted:       true,
			Reason:         "content context",
			CleanedMessage: cleaned,
			Confidence:     1.0,
		}
	}

	if len(cleaned) < minLength {
		return Verdict{
			Accepted:       false,
			Reason:         "too short",
			CleanedMessage: cleaned,
			Confidence:     1.0,
		}
	}

	score := f.score(lower)
	if score > acceptThreshold {
		return Verdict{
			Accepted:       true,
			Reason:         "academic",
			CleanedMessage: cleaned,
			Confidence:     score,
		}
	}
	return Verdict{
		Accepted:       false,
		Reason:         "not academic",
		CleanedMessage: cleaned,
		Confidence:     score,
	}
}

func (f *Filter) score(lower string) float64 {
	var score float64

	nonAcademic := containsAny(lower, nonAcademicKeywords)

	if containsAny(lower, academicKeywords) {
		score += 0.4
	}
	if containsAny(lower, subjectNames) {
		score += 0.3
	}
	if f.questionWord.MatchString(lower) && !nonAcademic {
		score += 0.2
	}
	for _, p := range f.patterns {
		if p.MatchString(lower) {
			score += 0.3
			break
		}
	}
	if nonAcademic {
		score -= 0.5
	}
	return score
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
