package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntent(t *testing.T) {
	i := NewIntent(ActionMoveLeft, ActionHardDrop)
	assert.True(t, i.Has(ActionMoveLeft))
	assert.True(t, i.Has(ActionHardDrop))
	assert.False(t, i.Has(ActionMoveRight))
	assert.Equal(t, "[move-left hard-drop]", i.String())

	i = i.Without(ActionMoveLeft)
	assert.False(t, i.Has(ActionMoveLeft))

	assert.True(t, NewIntent(ActionUnknown).Empty())
	assert.False(t, NewIntent().Has(ActionUnknown))
}

func TestParseAction(t *testing.T) {
	for _, a := range AllActions {
		parsed, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := ParseAction("jump")
	assert.Error(t, err)
}
