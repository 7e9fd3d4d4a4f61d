// Package dashboard holds the reactive core: the per-session selection
// state, the reducer that applies selection events, and the derivation
// envelope every view result travels in.
package dashboard

// Status classifies a view derivation result.
type Status string

const (
	// StatusOK means Data holds a renderable display description.
	StatusOK Status = "ok"
	// StatusEmpty means the derivation ran but there is nothing to show;
	// Reason explains why (e.g. "select at least 2 lineups").
	StatusEmpty Status = "empty"
	// StatusError means the derivation failed; Reason is the user-facing
	// placeholder message. The failure never leaves the view boundary.
	StatusError Status = "error"
)

// Derivation is the uniform envelope for every view: Ok(data), Empty or
// Error(reason). Renderers and the JSON layer consume it without caring
// which view produced it.
type Derivation struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// OK wraps a display description.
func OK(data any) Derivation {
	return Derivation{Status: StatusOK, Data: data}
}

// Empty builds an empty-state derivation with an explanatory reason.
func Empty(reason string) Derivation {
	return Derivation{Status: StatusEmpty, Reason: reason}
}

// Failed builds an error-state derivation with a placeholder reason.
func Failed(reason string) Derivation {
	return Derivation{Status: StatusError, Reason: reason}
}
