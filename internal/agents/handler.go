// Package agents implements the agent CRUD endpoints and the user-keys
// endpoint group. Both operate on the same agents table; user-keys differs
// only in URL path and the name-keyed GET response shape.
package agents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ayush/agent-registry/internal/api"
	"github.com/ayush/agent-registry/internal/models"
)

// AgentStore defines the interface for agent persistence.
//
// The (username, agent_name) pair is the application-level identity but is
// not unique in storage: Update and Delete touch every matching row and
// report how many they touched.
type AgentStore interface {
	CreateAgent(ctx context.Context, username, agentName, prompt string, agentContext, logoURL *string) (int64, error)
	ListAgents(ctx context.Context) ([]models.Agent, error)
	ListAgentsByUsername(ctx context.Context, username string) ([]models.Agent, error)
	UpdateAgents(ctx context.Context, username, agentName string, prompt, agentContext, logoURL *string) (int64, error)
	DeleteAgents(ctx context.Context, username, agentName string) (int64, error)
}

// Handler holds the agent HTTP handlers.
type Handler struct {
	agents AgentStore
	log    *slog.Logger
}

func NewHandler(agents AgentStore, log *slog.Logger) *Handler {
	return &Handler{agents: agents, log: log}
}

// Create inserts a new agent. POST /agents and POST /api/user-keys share
// this handler.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.AgentName == "" || req.Prompt == "" {
		api.WriteDetail(w, http.StatusBadRequest, "Username, agent_name, and prompt are required")
		return
	}

	id, err := h.agents.CreateAgent(r.Context(), req.Username, req.AgentName, req.Prompt, req.Context, req.LogoURL)
	if err != nil {
		h.log.Error("create agent failed", "username", req.Username, "agent_name", req.AgentName, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to create agent")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Agent created successfully",
		"agentId": id,
	})
}

// List returns every agent row.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agents.ListAgents(r.Context())
	if err != nil {
		h.log.Error("list agents failed", "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to fetch agents")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"agents": agents})
}

// UserKeys returns a user's agents keyed by agent_name. With duplicate
// names the later row by id wins, a consequence of the missing uniqueness
// constraint rather than a feature.
func (h *Handler) UserKeys(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		api.WriteDetail(w, http.StatusBadRequest, "Username is required")
		return
	}

	agents, err := h.agents.ListAgentsByUsername(r.Context(), username)
	if err != nil {
		h.log.Error("list agents failed", "username", username, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to fetch agents")
		return
	}
	if len(agents) == 0 {
		api.WriteDetail(w, http.StatusNotFound, "No agents found for this user")
		return
	}

	keys := map[string]models.AgentKey{}
	for _, a := range agents {
		keys[a.AgentName] = models.AgentKey{
			Prompt:  a.Prompt,
			Context: a.Context,
			LogoURL: a.LogoURL,
		}
	}
	api.WriteJSON(w, http.StatusOK, keys)
}

// Update patches every row matching (username, agent_name) with the
// supplied subset of fields.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.AgentName == "" {
		api.WriteDetail(w, http.StatusBadRequest, "Username and agent_name are required")
		return
	}
	if req.Prompt == nil && req.Context == nil && req.LogoURL == nil {
		api.WriteDetail(w, http.StatusBadRequest, "At least one field (prompt, context, logo_url) must be provided to update")
		return
	}

	n, err := h.agents.UpdateAgents(r.Context(), req.Username, req.AgentName, req.Prompt, req.Context, req.LogoURL)
	if err != nil {
		h.log.Error("update agent failed", "username", req.Username, "agent_name", req.AgentName, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to update agent")
		return
	}
	if n == 0 {
		api.WriteDetail(w, http.StatusNotFound, "Agent not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Agent updated successfully"})
}

// Delete removes every row matching (username, agent_name).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.AgentName == "" {
		api.WriteDetail(w, http.StatusBadRequest, "Username and agent_name are required")
		return
	}

	n, err := h.agents.DeleteAgents(r.Context(), req.Username, req.AgentName)
	if err != nil {
		h.log.Error("delete agent failed", "username", req.Username, "agent_name", req.AgentName, "error", err)
		api.WriteDetail(w, http.StatusInternalServerError, "Failed to delete agent")
		return
	}
	if n == 0 {
		api.WriteDetail(w, http.StatusNotFound, "Agent not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Agent deleted successfully"})
}
