package models

// Agent represents a row in the agents table. Context and LogoURL are
// nullable columns, so they marshal as JSON null when absent.
type Agent struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	AgentName string  `json:"agent_name"`
	Prompt    string  `json:"prompt"`
	Context   *string `json:"context"`
	LogoURL   *string `json:"logo_url"`
}

// AgentKey is the per-agent value in the name-keyed GET /api/user-keys
// response.
type AgentKey struct {
	Prompt  string  `json:"prompt"`
	Context *string `json:"context"`
	LogoURL *string `json:"logo_url"`
}

// CreateAgentRequest is the JSON body for POST /agents and POST /api/user-keys.
type CreateAgentRequest struct {
	Username  string  `json:"username"`
	AgentName string  `json:"agent_name"`
	Prompt    string  `json:"prompt"`
	Context   *string `json:"context"`
	LogoURL   *string `json:"logo_url"`
}

// UpdateAgentRequest is the JSON body for PUT /api/user-keys. Nil fields
// are left untouched on the matching rows.
type UpdateAgentRequest struct {
	Username  string  `json:"username"`
	AgentName string  `json:"agent_name"`
	Prompt    *string `json:"prompt"`
	Context   *string `json:"context"`
	LogoURL   *string `json:"logo_url"`
}

// DeleteAgentRequest is the JSON body for DELETE /api/user-keys.
type DeleteAgentRequest struct {
	Username  string `json:"username"`
	AgentName string `json:"agent_name"`
}
