package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/core/domain"
)

func TestParseCacheKind(t *testing.T) {
	for _, kind := range domain.CacheKinds {
		got, err := domain.ParseCacheKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := domain.ParseCacheKind("definitions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownCacheKind.Error())
}

func TestCacheStatus(t *testing.T) {
	status := domain.CacheStatus{Dependency: true}

	assert.False(t, status.Complete())
	assert.False(t, status.Has(domain.CacheRun))
	assert.False(t, status.Has(domain.CacheTerminated))
	assert.True(t, status.Has(domain.CacheDependency))
	assert.True(t, domain.CacheStatus{Run: true, Terminated: true, Dependency: true}.Complete())
}

func TestSelectKinds(t *testing.T) {
	assert.Equal(t, domain.CacheSelection{Run: true, Dependency: true},
		domain.SelectKinds(domain.CacheRun, domain.CacheDependency))
	assert.Equal(t, domain.AllKinds(), domain.SelectKinds(domain.CacheKinds...))
	assert.Equal(t, domain.CacheSelection{}, domain.SelectKinds())
}
