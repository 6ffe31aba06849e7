package modules

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_RejectsUnregisteredDependency(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Module{ID: Depreciation, Dependencies: []ID{Assets}})
	assert.ErrorIs(t, err, ErrMissingDependency)

	require.NoError(t, r.Register(Module{ID: Assets}))
	require.NoError(t, r.Register(Module{ID: Depreciation, Dependencies: []ID{Assets}}))

	err = r.Register(Module{ID: Assets})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestEnable_RequiresEnabledDependencies(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{ID: Assets}))
	require.NoError(t, r.Register(Module{ID: Depreciation, Dependencies: []ID{Assets}}))

	assert.ErrorIs(t, r.Enable(Depreciation), ErrMissingDependency)
	assert.False(t, r.IsEnabled(Depreciation))

	require.NoError(t, r.Enable(Assets))
	require.NoError(t, r.Enable(Depreciation))
	assert.True(t, r.IsEnabled(Depreciation))

	assert.ErrorIs(t, r.Enable("reports"), ErrUnknownModule)
}

func TestDisable_BlockedByEnabledDependents(t *testing.T) {
	r, err := NewDefaultRegistry([]string{"subscriptions", "payments", "imports"})
	require.NoError(t, err)

	err = r.Disable(Subscriptions)
	require.ErrorIs(t, err, ErrHasDependents)
	assert.Contains(t, err.Error(), "[imports payments]")

	require.NoError(t, r.Disable(Payments))
	require.NoError(t, r.Disable(Imports))
	require.NoError(t, r.Disable(Subscriptions))
	assert.False(t, r.IsEnabled(Subscriptions))

	assert.ErrorIs(t, r.Disable("reports"), ErrUnknownModule)
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry([]string{"depreciation", "assets"})
	require.NoError(t, err, "enable order follows declaration order, not input order")
	assert.True(t, r.IsEnabled(Assets))
	assert.True(t, r.IsEnabled(Depreciation))
	assert.False(t, r.IsEnabled(Subscriptions))
	assert.Len(t, r.List(), len(Builtin()))

	_, err = NewDefaultRegistry([]string{"payments"})
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewDefaultRegistry([]string{"crm"})
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestGetReturnsCopy(t *testing.T) {
	r, err := NewDefaultRegistry(nil)
	require.NoError(t, err)

	m, ok := r.Get(Payments)
	require.True(t, ok)
	m.Dependencies[0] = Assets
	m.Enabled = true

	again, _ := r.Get(Payments)
	assert.Equal(t, []ID{Subscriptions}, again.Dependencies)
	assert.False(t, again.Enabled)

	_, ok = r.Get("crm")
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	r, err := NewDefaultRegistry([]string{"assets"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Enable(Depreciation)
			_ = r.Disable(Depreciation)
		}()
		go func() {
			defer wg.Done()
			_ = r.IsEnabled(Depreciation)
			_ = r.List()
		}()
	}
	wg.Wait()
	assert.True(t, r.IsEnabled(Assets))
}
