package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush/agent-registry/internal/models"
)

const agentColumns = `id, username, agent_name, prompt, context, logo_url`

// CreateAgent inserts a new agent row and returns its id. Context and
// logoURL may be nil and are stored as NULL.
func (s *Store) CreateAgent(ctx context.Context, username, agentName, prompt string, agentContext, logoURL *string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO agents (username, agent_name, prompt, context, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		username, agentName, prompt, agentContext, logoURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create agent: %w", err)
	}
	return id, nil
}

// ListAgents returns every agent row in insertion order.
func (s *Store) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return s.queryAgents(ctx,
		`SELECT `+agentColumns+` FROM agents ORDER BY id`)
}

// ListAgentsByUsername returns the rows whose username matches exactly
// (case-sensitive), in insertion order. An empty slice means no match;
// callers decide whether that is an error.
func (s *Store) ListAgentsByUsername(ctx context.Context, username string) ([]models.Agent, error) {
	return s.queryAgents(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE username = $1 ORDER BY id`,
		username)
}

func (s *Store) queryAgents(ctx context.Context, query string, args ...any) ([]models.Agent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.Username, &a.AgentName, &a.Prompt, &a.Context, &a.LogoURL); err != nil {
			return nil, fmt.Errorf("list agents: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// UpdateAgents patches every row matching (username, agent_name). Only the
// non-nil fields are set; the pair is not unique, so duplicates are all
// patched identically. Returns the number of rows affected.
func (s *Store) UpdateAgents(ctx context.Context, username, agentName string, prompt, agentContext, logoURL *string) (int64, error) {
	sets := []string{}
	args := []any{}
	if prompt != nil {
		args = append(args, *prompt)
		sets = append(sets, fmt.Sprintf("prompt = $%d", len(args)))
	}
	if agentContext != nil {
		args = append(args, *agentContext)
		sets = append(sets, fmt.Sprintf("context = $%d", len(args)))
	}
	if logoURL != nil {
		args = append(args, *logoURL)
		sets = append(sets, fmt.Sprintf("logo_url = $%d", len(args)))
	}
	if len(sets) == 0 {
		return 0, fmt.Errorf("update agents: no fields to update")
	}

	args = append(args, username, agentName)
	query := fmt.Sprintf(
		`UPDATE agents SET %s WHERE username = $%d AND agent_name = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update agents: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update agents: %w", err)
	}
	return n, nil
}

// DeleteAgents removes every row matching (username, agent_name) and
// returns the number of rows deleted.
func (s *Store) DeleteAgents(ctx context.Context, username, agentName string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM agents WHERE username = $1 AND agent_name = $2`,
		username, agentName)
	if err != nil {
		return 0, fmt.Errorf("delete agents: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete agents: %w", err)
	}
	return n, nil
}
