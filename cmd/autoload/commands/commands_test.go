package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/cmd/autoload/commands"
	"go.trai.ch/autoload/internal/adapters/cache"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/adapters/logger"
	"go.trai.ch/autoload/internal/adapters/manifest"
	"go.trai.ch/autoload/internal/app"
	"go.trai.ch/autoload/internal/build"
	"go.trai.ch/autoload/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const lockFile = `{
  "packages": [
    {
      "name": "acme/kernel",
      "extra": {
        "php-remix": {
          "run": {"name": "Acme\\Kernel", "method": "boot"},
          "terminated": {"name": "Acme\\Kernel", "method": "shutdown"},
          "di": "config/di.php"
        }
      }
    },
    {"name": "acme/plain"}
  ]
}`

type workspace struct {
	dir      string
	cacheDir string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "composer.lock"), []byte(lockFile), 0o600))
	return workspace{dir: dir, cacheDir: filepath.Join(dir, ".autoload", "cache")}
}

func (w workspace) args(args ...string) []string {
	return append(args,
		"--config", filepath.Join(w.dir, "autoload.yaml"),
		"--manifest", filepath.Join(w.dir, "composer.lock"),
		"--cache-dir", w.cacheDir,
		"--base-path", filepath.Join(w.dir, "vendor"),
	)
}

func execute(t *testing.T, args []string) (string, error) {
	t.Helper()
	log := logger.NewWithWriter(io.Discard)
	a := app.New(config.NewLoader(log), manifest.NewReader(), cache.NewStore(), log)

	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return out.String(), err
}

type printedPlan struct {
	Source      string                  `yaml:"source"`
	Run         []domain.HookDescriptor `yaml:"run"`
	Terminated  []domain.HookDescriptor `yaml:"terminated"`
	Definitions []domain.DIReference    `yaml:"definitions"`
}

type printedListing struct {
	Run        []domain.HookEntry   `yaml:"run"`
	Terminated []domain.HookEntry   `yaml:"terminated"`
	Dependency []domain.DIReference `yaml:"dependency"`
}

func TestCommands_Load(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, w.args("load"))
	require.NoError(t, err)

	var first printedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &first))
	assert.Equal(t, "scan", first.Source)
	assert.Equal(t, []domain.HookDescriptor{{Type: "DI", Name: `Acme\Kernel`, Method: "boot"}}, first.Run)
	assert.Equal(t, []domain.HookDescriptor{{Type: "DI", Name: `Acme\Kernel`, Method: "shutdown"}}, first.Terminated)
	require.Len(t, first.Definitions, 1)
	assert.Equal(t, filepath.Join(w.dir, "vendor", "acme", "kernel", "config", "di.php"), first.Definitions[0].Path)

	out, err = execute(t, w.args("load"))
	require.NoError(t, err)

	var second printedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &second))
	assert.Equal(t, "cache", second.Source)
	assert.Equal(t, first.Run, second.Run)
	assert.Equal(t, first.Terminated, second.Terminated)
	assert.Equal(t, first.Definitions, second.Definitions)

	out, err = execute(t, w.args("load", "--no-cache"))
	require.NoError(t, err)
	assert.Contains(t, out, "source: scan")
}

func TestCommands_Scan(t *testing.T) {
	t.Run("prints lists without caching", func(t *testing.T) {
		w := newWorkspace(t)

		out, err := execute(t, w.args("scan"))
		require.NoError(t, err)

		var listed printedListing
		require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
		assert.Equal(t, []domain.HookEntry{{Name: `Acme\Kernel`, Method: "boot"}}, listed.Run)
		assert.Equal(t, []domain.HookEntry{{Name: `Acme\Kernel`, Method: "shutdown"}}, listed.Terminated)
		assert.Len(t, listed.Dependency, 1)

		_, err = os.Stat(w.cacheDir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("legacy routing", func(t *testing.T) {
		w := newWorkspace(t)

		out, err := execute(t, w.args("scan", "--terminated", "legacy"))
		require.NoError(t, err)

		var listed printedListing
		require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
		assert.Equal(t, []domain.HookEntry{
			{Name: `Acme\Kernel`, Method: "boot"},
			{Name: `Acme\Kernel`, Method: "shutdown"},
		}, listed.Run)
		assert.Empty(t, listed.Terminated)
	})

	t.Run("invalid routing", func(t *testing.T) {
		w := newWorkspace(t)

		_, err := execute(t, w.args("scan", "--terminated", "sideways"))
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvalidTerminatedRouting.Error())
	})

	t.Run("missing manifest", func(t *testing.T) {
		w := newWorkspace(t)
		require.NoError(t, os.Remove(filepath.Join(w.dir, "composer.lock")))

		_, err := execute(t, w.args("scan"))
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrManifestUnreadable.Error())
	})
}

func TestCommands_Cache(t *testing.T) {
	w := newWorkspace(t)

	out, err := execute(t, w.args("cache", "status"))
	require.NoError(t, err)
	assert.Equal(t, "run: false\nterminated: false\ndependency: false\n", out)

	_, err = execute(t, w.args("scan", "--write-cache"))
	require.NoError(t, err)

	out, err = execute(t, w.args("cache", "status"))
	require.NoError(t, err)
	assert.Equal(t, "run: true\nterminated: true\ndependency: true\n", out)

	out, err = execute(t, w.args("cache", "show", "run"))
	require.NoError(t, err)
	assert.Contains(t, out, "run:")
	assert.NotContains(t, out, "terminated:")
	assert.NotContains(t, out, "dependency:")

	out, err = execute(t, w.args("cache", "show"))
	require.NoError(t, err)
	var listed printedListing
	require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed.Run, 1)
	assert.Len(t, listed.Terminated, 1)
	assert.Len(t, listed.Dependency, 1)

	_, err = execute(t, w.args("cache", "show", "bogus"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownCacheKind.Error())

	_, err = execute(t, w.args("clean"))
	require.NoError(t, err)

	out, err = execute(t, w.args("cache", "status"))
	require.NoError(t, err)
	assert.Equal(t, "run: false\nterminated: false\ndependency: false\n", out)
}

func TestCommands_CacheDisabled(t *testing.T) {
	w := newWorkspace(t)
	w.cacheDir = ""

	for _, args := range [][]string{
		{"clean"},
		{"cache", "status"},
		{"cache", "show"},
		{"scan", "--write-cache"},
	} {
		_, err := execute(t, w.args(args...))
		require.ErrorIs(t, err, domain.ErrCacheDisabled, "args %v", args)
	}
}

func TestCommands_ConfigFile(t *testing.T) {
	w := newWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(w.dir, "autoload.yaml"), []byte("terminated: legacy\n"), 0o600))

	out, err := execute(t, w.args("scan"))
	require.NoError(t, err)

	var listed printedListing
	require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed.Run, 2)

	require.NoError(t, os.WriteFile(filepath.Join(w.dir, "autoload.yaml"), []byte("unknown: 1\n"), 0o600))
	_, err = execute(t, w.args("scan"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigMalformed.Error())
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, []string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "autoload version "+build.Version+"\n", out)
}

const extensionLockFile = `{
  "packages": [
    {
      "name": "acme/provider",
      "extra": {"php-remix": {"di": "Acme\\Provider::definitions"}}
    }
  ]
}`

const extensionConfig = `extension_command:
  - sh
  - -c
  - 'printf ''{"dir":"%s","port":8080}'' "$(pwd -P)"'
  - sh
`

func TestCommands_Load_ExtensionPointRunsInManifestDir(t *testing.T) {
	w := newWorkspace(t)
	projectDir := filepath.Join(w.dir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "composer.lock"), []byte(extensionLockFile), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(w.dir, "autoload.yaml"), []byte(extensionConfig), 0o600))

	args := []string{
		"load",
		"--config", filepath.Join(w.dir, "autoload.yaml"),
		"--manifest", filepath.Join(projectDir, "composer.lock"),
		"--cache-dir", w.cacheDir,
	}

	out, err := execute(t, args)
	require.NoError(t, err)

	var scanned printedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &scanned))
	assert.Equal(t, "scan", scanned.Source)
	require.Len(t, scanned.Definitions, 1)

	wantDir, err := filepath.EvalSymlinks(projectDir)
	require.NoError(t, err)
	defs := scanned.Definitions[0].Definitions
	assert.Equal(t, wantDir, defs["dir"])
	assert.Equal(t, 8080, defs["port"])

	out, err = execute(t, args)
	require.NoError(t, err)

	var cached printedPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &cached))
	assert.Equal(t, "cache", cached.Source)
	assert.Equal(t, scanned.Definitions, cached.Definitions)
}
