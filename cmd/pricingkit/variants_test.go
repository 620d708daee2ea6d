package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsCommandTable(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("variants")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "ACCENT")

	wantOrder := []string{"classic", "glass", "centered", "split", "dark"}
	for i, id := range wantOrder {
		assert.Contains(t, lines[i+1], id)
	}
	assert.Contains(t, lines[1], "(default)")
	assert.Contains(t, lines[3], "Minimal")
	assert.Contains(t, lines[3], "emerald")
	assert.NotContains(t, lines[5], "(default)")
}

func TestVariantsCommandJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("variants", "--json")
	require.NoError(t, err)

	var rows []variantRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 5)

	assert.Equal(t, variantRow{ID: "classic", Name: "Classic", Accent: "indigo", Default: true}, rows[0])
	assert.Equal(t, variantRow{ID: "dark", Name: "Tech", Accent: "cyan"}, rows[4])
}
