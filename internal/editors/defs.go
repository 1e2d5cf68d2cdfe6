package editors

import (
	"fmt"

	"editorscan/internal/fatal"
)

type definition struct {
	label string
	// candidates are probed in order; the first existing one wins.
	candidates []string
}

var definitions = [...]definition{
	Atom:           {label: "Atom", candidates: []string{"/usr/bin/atom"}},
	VSCode:         {label: "Visual Studio Code", candidates: []string{"/usr/bin/code"}},
	VSCodeInsiders: {label: "Visual Studio Code (Insiders)", candidates: []string{"/usr/bin/code-insiders"}},
	VSCodium:       {label: "VSCodium", candidates: []string{"/usr/bin/codium"}},
	SublimeText:    {label: "Sublime Text", candidates: []string{"/usr/bin/subl"}},
	Typora:         {label: "Typora", candidates: []string{"/usr/bin/typora"}},
	SlickEdit: {label: "SlickEdit", candidates: []string{
		"/opt/slickedit-pro2018/bin/vs",
		"/opt/slickedit-pro2017/bin/vs",
		"/opt/slickedit-pro2016/bin/vs",
		"/opt/slickedit-pro2015/bin/vs",
	}},
}

// Fails to compile unless the table has exactly one slot per Editor.
var _ = [1]struct{}{}[len(definitions)-int(editorCount)]

func init() {
	for _, e := range All() {
		def := definitions[e]
		if def.label == "" || len(def.candidates) == 0 {
			fatal.AssertNever(int(e), "editor has no definition")
		}
	}
}

// All returns every supported editor in declaration order.
func All() []Editor {
	all := make([]Editor, 0, editorCount)
	for e := Editor(0); e < editorCount; e++ {
		all = append(all, e)
	}
	return all
}

func lookup(e Editor) definition {
	if e < 0 || e >= editorCount {
		fatal.AssertNever(int(e), "unknown editor")
	}
	return definitions[e]
}

// String returns the editor's label.
func (e Editor) String() string {
	if e < 0 || e >= editorCount {
		return fmt.Sprintf("Editor(%d)", int(e))
	}
	return definitions[e].label
}

// MarshalText encodes the editor as its label.
func (e Editor) MarshalText() ([]byte, error) {
	if e < 0 || e >= editorCount {
		return nil, fmt.Errorf("unknown editor %d", int(e))
	}
	return []byte(definitions[e].label), nil
}

// UnmarshalText decodes a label produced by MarshalText.
func (e *Editor) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown editor label %q", text)
	}
	*e = parsed
	return nil
}

// Candidates returns the paths probed for e, in priority order.
func Candidates(e Editor) []string {
	def := lookup(e)
	out := make([]string, len(def.candidates))
	copy(out, def.candidates)
	return out
}
