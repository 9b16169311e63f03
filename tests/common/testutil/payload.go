//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutator edits a request payload before it is sent.
type Mutator func(map[string]any)

// DtoMap turns a request DTO into a JSON object so tests can break individual fields.
func DtoMap(t *testing.T, v any, muts ...Mutator) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		if mut != nil {
			mut(m)
		}
	}
	return m
}

// Field overrides key with value.
func Field(key string, value any) Mutator {
	return func(m map[string]any) { m[key] = value }
}

// Without drops key from the payload.
func Without(key string) Mutator {
	return func(m map[string]any) { delete(m, key) }
}
