package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const appName = "editorscan"

// AppPaths captures canonical locations used by editorscan.
type AppPaths struct {
	ConfigDir  string
	ConfigFile string
	StateDir   string
	LogsDir    string
}

// Resolve determines the application directories, honouring the optional
// --config flag for the configuration file location.
func Resolve(configFlag string) (AppPaths, error) {
	configRoot, err := os.UserConfigDir()
	if err != nil {
		return AppPaths{}, fmt.Errorf("resolve config dir: %w", err)
	}
	stateRoot, err := stateHome()
	if err != nil {
		return AppPaths{}, err
	}

	p := newAppPaths(filepath.Join(configRoot, appName), filepath.Join(stateRoot, appName))
	if configFlag != "" {
		abs, err := filepath.Abs(configFlag)
		if err != nil {
			return AppPaths{}, fmt.Errorf("resolve config file: %w", err)
		}
		p.ConfigFile = abs
		p.ConfigDir = filepath.Dir(abs)
	}
	return p, nil
}

func newAppPaths(configDir, stateDir string) AppPaths {
	return AppPaths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		StateDir:   stateDir,
		LogsDir:    filepath.Join(stateDir, "logs"),
	}
}

// stateHome follows the XDG base directory spec: $XDG_STATE_HOME, else
// ~/.local/state.
func stateHome() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	return filepath.Join(home, ".local", "state"), nil
}

// EnsureConfigDir makes sure the directory holding the config file exists
// on fsys.
func (p AppPaths) EnsureConfigDir(fsys afero.Fs) error {
	if err := fsys.MkdirAll(filepath.Dir(p.ConfigFile), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return nil
}
