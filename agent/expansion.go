package agent

import (
	"encoding/json"
	"fmt"
)

// QueryItem is a single proposed auxiliary query with a free-form type label
// (e.g. "related", "clarifying").
type QueryItem struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// QueryExpansion is the structured payload expected from the query-expansion
// agent. An empty query list is legitimate.
type QueryExpansion struct {
	Queries []QueryItem `json:"queries"`
}

// ParseQueryExpansion parses model output into a QueryExpansion. The payload
// is untrusted: a JSON list is wrapped as the query collection, a JSON object
// is validated against the collection shape, and anything else is an error.
// Callers default to an empty expansion on error; expansion is best-effort
// and never fatal.
func ParseQueryExpansion(raw string) (QueryExpansion, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return QueryExpansion{}, fmt.Errorf("query expansion is not valid JSON: %w", err)
	}

	switch v.(type) {
	case []any:
		var items []QueryItem
		if err := reparse(v, &items); err != nil {
			return QueryExpansion{}, fmt.Errorf("query expansion list has unexpected shape: %w", err)
		}
		return QueryExpansion{Queries: items}, nil
	case map[string]any:
		var expansion QueryExpansion
		if err := reparse(v, &expansion); err != nil {
			return QueryExpansion{}, fmt.Errorf("query expansion object has unexpected shape: %w", err)
		}
		return expansion, nil
	default:
		return QueryExpansion{}, fmt.Errorf("query expansion has unexpected JSON type %T", v)
	}
}

// reparse round-trips a decoded JSON value into a concrete target type.
func reparse(v any, target any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
