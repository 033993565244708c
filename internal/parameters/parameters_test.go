package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfigString(t *testing.T) {
	params := FromConfigString("max_depth=4,trace,name=a=b")
	assert.Equal(t, Params{"max_depth": "4", "trace": "", "name": "a=b"}, params)
	assert.Empty(t, FromConfigString(""))
}

func TestGetOrAndPopOr(t *testing.T) {
	params := FromConfigString("max_depth=4,trace,ratio=0.5")

	depth, err := GetOr(params, "max_depth", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, depth)

	trace, err := GetOr(params, "trace", false)
	require.NoError(t, err)
	assert.True(t, trace)

	ratio, err := PopOr(params, "ratio", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), ratio)
	assert.NotContains(t, params, "ratio")

	missing, err := GetOr(params, "missing", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", missing)

	_, err = GetOr(Params{"max_depth": "abc"}, "max_depth", 0)
	assert.Error(t, err)
}

func TestCheckExhausted(t *testing.T) {
	params := FromConfigString("max_depth=4")
	_, err := PopOr(params, "max_depth", 2)
	require.NoError(t, err)
	assert.NoError(t, params.CheckExhausted("astar"))

	params = FromConfigString("max_dept=4")
	assert.ErrorContains(t, params.CheckExhausted("astar"), "max_dept")
}
