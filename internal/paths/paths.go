// Package paths resolves the directories searched for the configuration
// file.
package paths

import (
	"os"
	"path/filepath"
)

// EnvConfigDir, when set, pins the config search to a single directory.
const EnvConfigDir = "KAIRO_CONFIG_DIR"

// systemConfigDir is the machine-wide fallback.
const systemConfigDir = "/etc/kairo"

// userConfigDir is overridable in tests.
var userConfigDir = os.UserConfigDir

// ConfigSearchPath returns the directories to search for config.toml, most
// specific first: the working directory, the per-user config directory, then
// the system directory. The environment override short-circuits the search.
func ConfigSearchPath() []string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return []string{dir}
	}

	dirs := []string{"."}
	if ucd, err := userConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(ucd, "kairo"))
	}
	return append(dirs, systemConfigDir)
}
