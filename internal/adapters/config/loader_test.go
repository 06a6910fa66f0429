package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := createFile(t, t.TempDir(), "autoload.yaml", `
manifest: app/composer.lock
cache_dir: var/cache/autoload
base_path: /srv/app/vendor
vendor_key: acme
include_dev: true
terminated: legacy
extension_command: ["php", "bin/definitions"]
log_level: debug
`)

	cfg, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{
		ManifestPath:     "app/composer.lock",
		CacheDir:         "var/cache/autoload",
		BasePath:         "/srv/app/vendor",
		VendorKey:        "acme",
		IncludeDev:       true,
		Terminated:       domain.TerminatedLegacy,
		ExtensionCommand: []string{"php", "bin/definitions"},
		LogLevel:         "debug",
	}, cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(filepath.Join(t.TempDir(), "autoload.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestParse_EmptyAndPartial(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)

	cfg, err = config.Parse([]byte("manifest: other.lock\n"))
	require.NoError(t, err)
	assert.Equal(t, "other.lock", cfg.ManifestPath)
	assert.Equal(t, domain.DefaultCachePath(), cfg.CacheDir)
	assert.Equal(t, domain.TerminatedSeparate, cfg.Terminated)
}

func TestParse_EmptyCacheDirDisablesCaching(t *testing.T) {
	cfg, err := config.Parse([]byte(`cache_dir: ""` + "\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.CacheDir)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{"InvalidYAML", "manifest: [unclosed\n", domain.ErrConfigMalformed},
		{"UnknownKey", "manifset: composer.lock\n", domain.ErrConfigMalformed},
		{"WrongType", "include_dev: [1]\n", domain.ErrConfigMalformed},
		{"BadRouting", "terminated: sideways\n", domain.ErrInvalidTerminatedRouting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}
