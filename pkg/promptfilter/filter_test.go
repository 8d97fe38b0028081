package promptfilter

import "testing"

func TestCheck(t *testing.T) {
	f := New()

	tests := []struct {
		name       string
		message    string
		hasContext bool
		accepted   bool
	}{
		{
			name:     "academic question accepted",
			message:  "How do I solve this derivative problem?",
			accepted: true,
		},
		{
			name:     "off topic question rejected",
			message:  "What's the weather like today?",
			accepted: false,
		},
		{
			name:     "subject name alone sits on the boundary and is rejected",
			message:  "physics",
			accepted: false,
		},
		{
			name:     "too short rejected",
			message:  "ok",
			accepted: false,
		},
		{
			name:       "short follow-up accepted with content context",
			message:    "ok",
			hasContext: true,
			accepted:   true,
		},
		{
			name:     "cheating request rejected",
			message:  "help me cheat on my maths exam",
			accepted: false,
		},
		{
			name:       "deny list wins over content context",
			message:    "give me the leaked paper for this course",
			hasContext: true,
			accepted:   false,
		},
		{
			name:     "explain request accepted",
			message:  "Explain the difference between stacks and queues",
			accepted: true,
		},
		{
			name:     "casual chat rejected",
			message:  "tell me a joke",
			accepted: false,
		},
		{
			name:     "whitespace only rejected",
			message:  "   ",
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := f.Check(tt.message, tt.hasContext)
			if v.Accepted != tt.accepted {
				t.Errorf("Check(%q, %v) accepted = %v, want %v (reason %q, confidence %.2f)",
					tt.message, tt.hasContext, v.Accepted, tt.accepted, v.Reason, v.Confidence)
			}
		})
	}
}

func TestConfidenceIsAdditive(t *testing.T) {
	f := New()

	v := f.Check("How do I solve this derivative problem?", false)
	if !v.Accepted {
		t.Fatalf("expected accepted, got reason %q", v.Reason)
	}
	// keyword 0.4 + question word 0.2 + pattern 0.3
	if v.Confidence < 0.89 || v.Confidence > 0.91 {
		t.Errorf("expected confidence 0.9, got %.2f", v.Confidence)
	}
}

func TestCleanedMessageIsTrimmed(t *testing.T) {
	f := New()

	v := f.Check("  explain the concept of recursion  ", false)
	if v.CleanedMessage != "explain the concept of recursion" {
		t.Errorf("expected trimmed message, got %q", v.CleanedMessage)
	}
	if !v.Accepted {
		t.Errorf("expected accepted, got reason %q", v.Reason)
	}
}
