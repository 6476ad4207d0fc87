package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamHelpersFormatValues(t *testing.T) {
	assert.Equal(t, Parameter{Key: "r", Label: "Radius", Type: ParamTypeInt, Value: "6"}, IntParam("r", "Radius", 6))
	assert.Equal(t, "-9000000000", Int64Param("seed", "Seed", -9000000000).Value)
	assert.Equal(t, "0.45", FloatParam("g", "Gamma", 0.45).Value)
	assert.Equal(t, ParamTypeFloat, FloatParam("g", "Gamma", 1).Type)
	assert.Equal(t, ParamTypeString, StringParam("noise", "Noise", "perlin").Type)
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("w", "Width", 8)}},
		{Name: "B", Params: []Parameter{StringParam("noise", "Noise", "simplex")}},
	}}
	p, ok := snap.Lookup("noise")
	require.True(t, ok)
	assert.Equal(t, "simplex", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}
