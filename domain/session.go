package domain

// Session holds the per-visitor settings that survive between renders.
type Session struct {
	Currency string    `json:"currency"`
	Tool     ToolLabel `json:"tool,omitempty"`
}
