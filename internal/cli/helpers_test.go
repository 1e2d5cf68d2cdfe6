package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/etc/editorscan-test/config.yaml"

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command against in-memory filesystems. installed
// paths are created on the probe filesystem; configBody, when non-empty, is
// written to the config file.
func runCLI(t *testing.T, installed []string, configBody string, args ...string) (cliResult, afero.Fs) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("EDITORSCAN_EDITOR", "")
	t.Setenv("EDITORSCAN_LOG_LEVEL", "")

	probe := afero.NewMemMapFs()
	for _, p := range installed {
		require.NoError(t, probe.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(probe, p, nil, 0o755))
	}

	cfgFs := afero.NewMemMapFs()
	if configBody != "" {
		require.NoError(t, cfgFs.MkdirAll(filepath.Dir(testConfigPath), 0o755))
		require.NoError(t, afero.WriteFile(cfgFs, testConfigPath, []byte(configBody), 0o644))
	}

	prevConfigFs, prevProbeFs := configFs, probeFs
	t.Cleanup(func() {
		configFs, probeFs = prevConfigFs, prevProbeFs
	})
	configFs, probeFs = cfgFs, probe

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", testConfigPath}, args...))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}, cfgFs
}
