package editors

// Parse returns the editor whose label exactly matches label. The boolean is
// false for anything else; an unrecognised label is not an error.
func Parse(label string) (Editor, bool) {
	for _, e := range All() {
		if definitions[e].label == label {
			return e, true
		}
	}
	return 0, false
}

// Labels returns every editor label in declaration order.
func Labels() []string {
	labels := make([]string, 0, editorCount)
	for _, e := range All() {
		labels = append(labels, e.String())
	}
	return labels
}
