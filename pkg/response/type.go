package response

// Resp is the envelope every endpoint answers with. Callers branch on Success.
type Resp struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}
