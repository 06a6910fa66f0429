package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/core/domain"
)

func TestParseTerminatedRouting(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.TerminatedRouting
	}{
		{"", domain.TerminatedSeparate},
		{"separate", domain.TerminatedSeparate},
		{"legacy", domain.TerminatedLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseTerminatedRouting(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseTerminatedRouting("run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidTerminatedRouting.Error())
}

func TestMetadataBlock_IsEmpty(t *testing.T) {
	var nilBlock *domain.MetadataBlock
	assert.True(t, nilBlock.IsEmpty())
	assert.True(t, (&domain.MetadataBlock{}).IsEmpty())
	assert.True(t, (&domain.MetadataBlock{Run: &domain.HookEntry{}}).IsEmpty())

	di := domain.FileReference("di.php")
	assert.False(t, (&domain.MetadataBlock{DI: &di}).IsEmpty())
	assert.False(t, (&domain.MetadataBlock{Terminated: &domain.HookEntry{Name: "A"}}).IsEmpty())
}

func TestHookEntry_Descriptor(t *testing.T) {
	entry := domain.HookEntry{Name: "App\\Boot", Method: "boot"}
	assert.Equal(t, domain.HookDescriptor{Type: "DI", Name: "App\\Boot", Method: "boot"}, entry.Descriptor())
}

func TestDIReference(t *testing.T) {
	path := domain.PathReference("/app/vendor/a/b/di.php")
	assert.True(t, path.IsPath())

	evaluated := domain.EvaluatedReference(nil)
	assert.False(t, evaluated.IsPath())
	assert.NotNil(t, evaluated.Definitions)
}

func TestDIValueKind_String(t *testing.T) {
	assert.Equal(t, "file", domain.FileReference("x").Kind.String())
	assert.Equal(t, "extension", domain.ExtensionPoint("A::b").Kind.String())
	assert.Equal(t, "unknown", domain.DIValueKind(42).String())
}
