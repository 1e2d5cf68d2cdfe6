package cli

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowDefaults(t *testing.T) {
	res, _ := runCLI(t, nil, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "version: 1")
	assert.Contains(t, res.stdout, "log_level: info")
}

func TestConfigShowFile(t *testing.T) {
	res, _ := runCLI(t, nil, "editor: VSCodium\n", "config", "show", "--json")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"version":1,"editor":"VSCodium","log_level":"info"}`, res.stdout)
}

func TestConfigInitWritesFile(t *testing.T) {
	res, cfgFs := runCLI(t, nil, "", "config", "init", "--editor", "Sublime Text")
	require.NoError(t, res.err)
	assert.Equal(t, "wrote "+testConfigPath+"\n", res.stdout)

	data, err := afero.ReadFile(cfgFs, testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "editor: Sublime Text")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	res, cfgFs := runCLI(t, nil, "editor: Atom\n", "config", "init")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "already exists")

	data, err := afero.ReadFile(cfgFs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "editor: Atom\n", string(data))
}

func TestConfigInitForceWarnsOnUnknownLabel(t *testing.T) {
	res, cfgFs := runCLI(t, nil, "editor: Atom\n", "config", "init", "--force", "--editor", "Notepad")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "unrecognised editor label")

	data, err := afero.ReadFile(cfgFs, testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "editor: Notepad")
}
