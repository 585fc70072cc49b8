package gradle

import "strings"

// Failure is one link of a resolution failure cause chain.
// Kind is the failure's type name as reported by the host, Message its
// rendered message. Cause points at the wrapped underlying failure, if any.
type Failure struct {
	Kind    string   `json:"type"`
	Message string   `json:"message"`
	Cause   *Failure `json:"cause,omitempty"`
}

// Format renders the full cause chain:
//
//	KindA: messageA
//	Caused by: KindB: messageB
//	...
//
// walking Cause links until none remain. A nil failure renders empty.
func (f *Failure) Format() string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(f.Kind)
	b.WriteString(": ")
	b.WriteString(f.Message)
	for c := f.Cause; c != nil; c = c.Cause {
		b.WriteString("\nCaused by: ")
		b.WriteString(c.Kind)
		b.WriteString(": ")
		b.WriteString(c.Message)
	}
	return b.String()
}
