package tree

// ExpansionState tracks which directories are open in a rendering layer.
// It is keyed by directory path. The tree builder itself stays purely
// functional; consumers own this state and merge it with each rebuilt
// forest.
type ExpansionState map[string]bool

// NewExpansionState returns the state for a freshly built forest with
// every directory expanded.
func NewExpansionState(forest []*Node) ExpansionState {
	state := make(ExpansionState)
	state.Merge(forest)
	return state
}

// Merge union-merges the forest's directories into the state. Directories
// not yet tracked start expanded; existing entries keep their value, so a
// directory collapsed before a rebuild stays collapsed after it.
func (s ExpansionState) Merge(forest []*Node) {
	Walk(forest, func(n *Node, _ int) bool {
		if n.Kind == NodeDirectory {
			if _, ok := s[n.Path]; !ok {
				s[n.Path] = true
			}
		}
		return true
	})
}

// IsExpanded reports whether the directory at path is expanded. Unknown
// paths report expanded.
func (s ExpansionState) IsExpanded(path string) bool {
	expanded, ok := s[path]
	return !ok || expanded
}

// Expand marks the directory at path as expanded.
func (s ExpansionState) Expand(path string) {
	s[path] = true
}

// Collapse marks the directory at path as collapsed.
func (s ExpansionState) Collapse(path string) {
	s[path] = false
}

// Toggle flips the expansion of the directory at path.
func (s ExpansionState) Toggle(path string) {
	s[path] = !s.IsExpanded(path)
}
