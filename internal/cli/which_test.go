package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorscan/internal/editors"
	"editorscan/internal/logx"
)

var bothInstalled = []string{"/usr/bin/code", "/opt/slickedit-pro2018/bin/vs"}

func TestWhichUsesConfiguredEditor(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "editor: SlickEdit\n", "which")
	require.NoError(t, res.err)
	assert.Equal(t, "/opt/slickedit-pro2018/bin/vs\n", res.stdout)
}

func TestWhichArgumentBeatsFlagAndConfig(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "editor: SlickEdit\n", "which", "--editor", "SlickEdit", "Visual Studio Code")
	require.NoError(t, res.err)
	assert.Equal(t, "/usr/bin/code\n", res.stdout)
}

func TestWhichFlagBeatsConfig(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "editor: SlickEdit\n", "which", "--editor", "Visual Studio Code")
	require.NoError(t, res.err)
	assert.Equal(t, "/usr/bin/code\n", res.stdout)
}

func TestWhichUnknownLabelFallsBack(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "", "which", "Notepad")
	require.NoError(t, res.err)
	assert.Equal(t, "/usr/bin/code\n", res.stdout)
	assert.Contains(t, res.stderr, "unrecognised editor label")
}

func TestWhichPreferredNotInstalledFallsBack(t *testing.T) {
	res, _ := runCLI(t, []string{"/opt/slickedit-pro2018/bin/vs"}, "editor: Typora\n", "which")
	require.NoError(t, res.err)
	assert.Equal(t, "/opt/slickedit-pro2018/bin/vs\n", res.stdout)
	assert.Contains(t, res.stderr, "preferred editor is not installed")
}

func TestWhichNothingInstalled(t *testing.T) {
	res, _ := runCLI(t, nil, "editor: Atom\n", "which")
	require.ErrorIs(t, res.err, ErrNoEditor)
	assert.Empty(t, res.stdout)
}

func TestWhichJSON(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "", "which", "--json")
	require.NoError(t, res.err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, map[string]string{"editor": "Visual Studio Code", "path": "/usr/bin/code"}, got)
}

func TestWhichMalformedConfig(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "editor: [broken\n", "which")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "read config")
}

func TestPickWithoutTerminalActsLikeWhich(t *testing.T) {
	res, _ := runCLI(t, bothInstalled, "editor: SlickEdit\n", "pick")
	require.NoError(t, res.err)
	assert.Equal(t, "/opt/slickedit-pro2018/bin/vs\n", res.stdout)

	res, _ = runCLI(t, nil, "", "pick")
	require.ErrorIs(t, res.err, ErrNoEditor)
}

func TestChoose(t *testing.T) {
	found := []editors.FoundEditor{
		{Editor: editors.VSCodium, Path: "/usr/bin/codium"},
		{Editor: editors.Typora, Path: "/usr/bin/typora"},
	}
	log := logx.Discard()

	tests := []struct {
		label string
		want  string
	}{
		{"", "/usr/bin/codium"},
		{"Typora", "/usr/bin/typora"},
		{"VSCodium", "/usr/bin/codium"},
		{"Atom", "/usr/bin/codium"},
		{"Notepad", "/usr/bin/codium"},
	}
	for _, tt := range tests {
		got, err := choose(found, tt.label, log)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Path, "choose(%q)", tt.label)
	}

	_, err := choose(nil, "Typora", log)
	assert.ErrorIs(t, err, ErrNoEditor)
}
