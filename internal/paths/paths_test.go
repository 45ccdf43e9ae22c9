package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSearchPath(t *testing.T) {
	t.Run("environment override wins and stands alone", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/kairo-conf")
		assert.Equal(t, []string{"/tmp/kairo-conf"}, ConfigSearchPath())
	})

	t.Run("working directory is searched first", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got := ConfigSearchPath()
		require.NotEmpty(t, got)
		assert.Equal(t, ".", got[0])
	})

	t.Run("system directory is the last resort", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got := ConfigSearchPath()
		assert.Equal(t, "/etc/kairo", got[len(got)-1])
	})

	t.Run("user config directory sits between cwd and system", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		orig := userConfigDir
		userConfigDir = func() (string, error) { return "/home/someone/.config", nil }
		t.Cleanup(func() { userConfigDir = orig })

		got := ConfigSearchPath()
		require.Len(t, got, 3)
		assert.Equal(t, filepath.Join("/home/someone/.config", "kairo"), got[1])
	})

	t.Run("unresolvable user config dir is skipped", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		orig := userConfigDir
		userConfigDir = func() (string, error) { return "", errors.New("no home") }
		t.Cleanup(func() { userConfigDir = orig })

		got := ConfigSearchPath()
		assert.Equal(t, []string{".", "/etc/kairo"}, got)
	})
}
