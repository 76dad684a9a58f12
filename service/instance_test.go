package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/field"
)

func TestInstance_SetOnceThenGet(t *testing.T) {
	def := Define("svc").Field("a", field.String()).MustBuild()
	ins := newInstance(def)

	require.NoError(t, ins.SetOnce("a", "value"))
	assert.Equal(t, "value", ins.Get("a"))

	v, ok := ins.GetOK("a")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestInstance_SecondWriteFails(t *testing.T) {
	def := Define("svc").Field("a", field.String()).MustBuild()
	ins := newInstance(def)

	require.NoError(t, ins.SetOnce("a", "value"))

	// Re-initialization fails even with an equal value.
	err := ins.SetOnce("a", "value")
	require.Error(t, err)
	assert.True(t, errors.IsModification(err))
}

func TestInstance_NilValueStillInitializes(t *testing.T) {
	def := Define("svc").Field("a", field.String()).MustBuild()
	ins := newInstance(def)

	require.NoError(t, ins.SetOnce("a", nil))

	v, ok := ins.GetOK("a")
	assert.True(t, ok, "a nil value still marks the field initialized")
	assert.Nil(t, v)

	err := ins.SetOnce("a", nil)
	require.Error(t, err)
	assert.True(t, errors.IsModification(err))
}

func TestInstance_UndeclaredFieldFails(t *testing.T) {
	def := Define("svc").Field("a", field.String()).MustBuild()
	ins := newInstance(def)

	err := ins.SetOnce("b", "value")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownParameter(err))
}

func TestInstance_UniqueIDs(t *testing.T) {
	def := Define("svc").Field("a", field.String()).MustBuild()

	first := newInstance(def)
	second := newInstance(def)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Same(t, def, first.Definition())
}
