package tree

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/masmgr/difftree-go/internal/git"
	"github.com/masmgr/difftree-go/internal/stats"
)

// NodeKind distinguishes directory nodes from file nodes.
type NodeKind int

const (
	NodeDirectory NodeKind = iota
	NodeFile
)

// String returns a string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDirectory:
		return "directory"
	case NodeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is one node of a diff forest. Directory nodes carry an ordered
// child list and counts aggregated over all descendant files; file nodes
// carry the identity and counts of their stat.
type Node struct {
	Kind NodeKind
	Name string
	Path string
	Add  int
	Del  int

	// File nodes only.
	ID     string
	Change git.ChangeKind

	// Directory nodes only.
	Children []*Node
}

// IsDir returns true for directory nodes.
func (n *Node) IsDir() bool {
	return n.Kind == NodeDirectory
}

// Build constructs a diff forest from per-file statistics. Each stat's
// path is split on "/" (empty segments discarded); non-terminal segments
// become directories, the terminal segment a file leaf. Directory counts
// are aggregated bottom-up, and every sibling group is ordered with
// directories before files, then by collated name. Build never fails:
// empty input yields an empty forest, and a duplicate path overwrites the
// earlier leaf at that position.
func Build(fileStats []stats.FileStat) []*Node {
	root := newDirNode("", "")

	for _, stat := range fileStats {
		root.insert(splitPath(stat.Path), stat)
	}

	collator := collate.New(language.Und)
	forest := root.finalize(collator)
	return forest.Children
}

// Walk visits every node of the forest depth-first, parents before
// children. Returning false from the visitor skips a directory's children.
func Walk(forest []*Node, visit func(n *Node, depth int) bool) {
	walk(forest, 0, visit)
}

func walk(nodes []*Node, depth int, visit func(n *Node, depth int) bool) {
	for _, n := range nodes {
		if !visit(n, depth) {
			continue
		}
		if len(n.Children) > 0 {
			walk(n.Children, depth+1, visit)
		}
	}
}

// builderNode is the mutable node shape used during construction. A node
// is a file when children is nil; converting it to a directory is an
// explicit step that carries its counts forward.
type builderNode struct {
	name     string
	path     string
	stat     stats.FileStat
	children map[string]*builderNode // nil for file nodes
	carryAdd int
	carryDel int
}

func newDirNode(name, path string) *builderNode {
	return &builderNode{
		name:     name,
		path:     path,
		children: make(map[string]*builderNode),
	}
}

// insert walks/creates one directory per non-terminal segment and places
// the stat as a file leaf at the terminal segment.
func (b *builderNode) insert(segments []string, stat stats.FileStat) {
	if len(segments) == 0 {
		return
	}

	current := b
	for _, segment := range segments[:len(segments)-1] {
		current = current.childDir(segment)
	}

	// Last write wins at the leaf position.
	name := segments[len(segments)-1]
	current.children[name] = &builderNode{
		name: name,
		path: joinPath(current.path, name),
		stat: stat,
	}
}

// childDir returns the named child as a directory, creating it if absent.
// A file already occupying the position is converted to a directory,
// carrying its counts forward as a starting aggregate.
func (b *builderNode) childDir(name string) *builderNode {
	child, ok := b.children[name]
	if !ok {
		child = newDirNode(name, joinPath(b.path, name))
		b.children[name] = child
		return child
	}

	if child.children == nil {
		child.carryAdd = child.stat.Add
		child.carryDel = child.stat.Del
		child.stat = stats.FileStat{}
		child.children = make(map[string]*builderNode)
	}

	return child
}

// finalize converts the builder node into an immutable Node: children are
// finalized recursively, counts aggregated, and siblings ordered with
// directories before files, then by collated name.
func (b *builderNode) finalize(collator *collate.Collator) *Node {
	if b.children == nil {
		return &Node{
			Kind:   NodeFile,
			Name:   b.name,
			Path:   b.path,
			Add:    b.stat.Add,
			Del:    b.stat.Del,
			ID:     b.stat.ID,
			Change: b.stat.Change,
		}
	}

	node := &Node{
		Kind:     NodeDirectory,
		Name:     b.name,
		Path:     b.path,
		Add:      b.carryAdd,
		Del:      b.carryDel,
		Children: make([]*Node, 0, len(b.children)),
	}

	for _, child := range b.children {
		finalized := child.finalize(collator)
		node.Add += finalized.Add
		node.Del += finalized.Del
		node.Children = append(node.Children, finalized)
	}

	sort.Slice(node.Children, func(i, j int) bool {
		return siblingLess(collator, node.Children[i], node.Children[j])
	})

	return node
}

// siblingLess orders directories before files, then by locale-aware name
// comparison within each kind.
func siblingLess(collator *collate.Collator, a, b *Node) bool {
	if a.Kind != b.Kind {
		return a.Kind == NodeDirectory
	}
	return collator.CompareString(a.Name, b.Name) < 0
}

// splitPath splits a path on "/", discarding empty segments so leading
// and duplicate separators are handled.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
