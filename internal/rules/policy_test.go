package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPolicySnapshot(t *testing.T) {
	p := Snapshot()

	assert.Equal(t, PolicyVersion, p.Version)
	assert.Equal(t, BaseScore, p.BaseScore)
	assert.Len(t, p.Orbs, 5)
	assert.Len(t, p.Rules, len(All()))
	assert.Len(t, p.Profiles, 8)

	for _, prof := range p.Profiles {
		assert.NotEmpty(t, prof.Significators, "profile %s", prof.Type)
	}
}

func TestPolicyHashDeterministic(t *testing.T) {
	h1, err := Snapshot().Hash()
	require.NoError(t, err)
	h2, err := Snapshot().Hash()
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // hex-encoded SHA-256
}

func TestPolicyYAMLRoundTrip(t *testing.T) {
	out, err := Snapshot().YAML()
	require.NoError(t, err)

	var back Policy
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, PolicyVersion, back.Version)
	assert.Len(t, back.Rules, len(All()))
}
