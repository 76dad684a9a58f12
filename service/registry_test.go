package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/field"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	def := Define("svc").Field("a", field.String()).MustBuild()

	require.NoError(t, reg.Register(def))

	got, ok := reg.Get("svc")
	require.True(t, ok)
	assert.Same(t, def, got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_DuplicateFails(t *testing.T) {
	reg := NewRegistry()
	def := Define("svc").Field("a", field.String()).MustBuild()

	require.NoError(t, reg.Register(def))
	err := reg.Register(Define("svc").Field("b", field.Integer()).MustBuild())
	require.Error(t, err)
	assert.True(t, errors.IsDefinition(err))
}

func TestRegistry_NilDefinitionFails(t *testing.T) {
	err := NewRegistry().Register(nil)
	require.Error(t, err)
	assert.True(t, errors.IsDefinition(err))
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(
		Define("charlie").Field("a", field.String()).MustBuild(),
		Define("alpha").Field("a", field.String()).MustBuild(),
		Define("bravo").Field("a", field.String()).MustBuild(),
	)

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, reg.Names())
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	def := Define("svc").Field("a", field.String()).MustBuild()
	reg.MustRegister(def)

	assert.Panics(t, func() { reg.MustRegister(def) })
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("svc-%d", n)
			def := Define(name).Field("a", field.String()).MustBuild()
			require.NoError(t, reg.Register(def))
			_, ok := reg.Get(name)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, reg.Len())
}
