package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlshield/tomlshield/internal/scan"
)

func TestNew(t *testing.T) {
	rep := New("1.2.3")
	assert.Equal(t, "tomlshield", rep.Tool)
	assert.Equal(t, "1.2.3", rep.Version)

	_, err := uuid.Parse(rep.RunID)
	require.NoError(t, err, "run ID must be a valid UUID")

	assert.False(t, rep.HasFindings())
}

func TestAdd(t *testing.T) {
	rep := New("0.1.0")
	rep.Add("a.toml", []scan.Finding{
		{Line: 3, Key: "password", Section: "db", Reason: scan.ReasonKeyName},
		{Line: 9, Key: "endpoint", Reason: scan.ReasonValuePattern},
	})
	rep.Add("b.toml", nil)
	rep.Add("c.toml", []scan.Finding{
		{Line: 1, Key: "token", Reason: scan.ReasonKeyName},
	})

	require.Len(t, rep.Files, 3)
	assert.Equal(t, 3, rep.Summary.Total)
	assert.Equal(t, 2, rep.Summary.ByReason[string(scan.ReasonKeyName)])
	assert.Equal(t, 1, rep.Summary.ByReason[string(scan.ReasonValuePattern)])
	assert.True(t, rep.HasFindings())
}
