package editors

// Editor identifies a supported external code editor. The set is closed:
// every value between Atom and SlickEdit has an entry in the definition table.
type Editor int

const (
	Atom Editor = iota
	VSCode
	VSCodeInsiders
	VSCodium
	SublimeText
	Typora
	SlickEdit

	editorCount
)

// FoundEditor pairs an editor with a path that existed when it was probed.
// The path may have disappeared since.
type FoundEditor struct {
	Editor Editor `json:"editor"`
	Path   string `json:"path"`
}

// Status captures the outcome of resolving a single editor.
type Status struct {
	Editor  Editor   `json:"editor"`
	Found   bool     `json:"found"`
	Path    string   `json:"path,omitempty"`
	Checked []string `json:"checked,omitempty"`
	Error   string   `json:"error,omitempty"`
	Hints   []string `json:"hints,omitempty"`
}
