package editors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKnownLabels(t *testing.T) {
	tests := []struct {
		label string
		want  Editor
	}{
		{"Atom", Atom},
		{"Visual Studio Code", VSCode},
		{"Visual Studio Code (Insiders)", VSCodeInsiders},
		{"VSCodium", VSCodium},
		{"Sublime Text", SublimeText},
		{"Typora", Typora},
		{"SlickEdit", SlickEdit},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.label)
		assert.True(t, ok, "Parse(%q) should match", tt.label)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.label)
	}
}

func TestParseUnknownLabels(t *testing.T) {
	for _, label := range []string{
		"",
		"Notepad",
		"atom",
		"visual studio code",
		"Visual Studio Code ",
		" VSCodium",
		"VSCode",
		"Sublime",
		"Editor(0)",
	} {
		_, ok := Parse(label)
		assert.False(t, ok, "Parse(%q) should not match", label)
	}
}

func TestParseRoundTripsString(t *testing.T) {
	for _, e := range All() {
		got, ok := Parse(e.String())
		assert.True(t, ok)
		assert.Equal(t, e, got)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{
		"Atom",
		"Visual Studio Code",
		"Visual Studio Code (Insiders)",
		"VSCodium",
		"Sublime Text",
		"Typora",
		"SlickEdit",
	}, Labels())
}
