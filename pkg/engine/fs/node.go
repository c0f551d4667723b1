// Package fs models the synthetic filesystem the player explores.
package fs

import (
	"sort"
	"strings"
)

// RootName is the name of the directory at the top of every tree
const RootName = "root"

// Kind distinguishes files from directories
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// String returns "file" or "dir"
func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Node is a single file or directory in the tree.
// Content is only meaningful for files, Children only for directories.
type Node struct {
	Name     string
	Kind     Kind
	Content  string
	Children map[string]*Node
}

// NewDir creates a directory node holding the given children
func NewDir(name string, children ...*Node) *Node {
	n := &Node{
		Name:     name,
		Kind:     KindDir,
		Children: make(map[string]*Node, len(children)),
	}
	for _, c := range children {
		n.Add(c)
	}
	return n
}

// NewFile creates a file node with the given content
func NewFile(name, content string) *Node {
	return &Node{
		Name:    name,
		Kind:    KindFile,
		Content: content,
	}
}

// IsDir returns true for directory nodes
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == KindDir
}

// IsFile returns true for file nodes
func (n *Node) IsFile() bool {
	return n != nil && n.Kind == KindFile
}

// Add inserts child under n, keyed by the child's own name.
// Adding to a file is a no-op.
func (n *Node) Add(child *Node) {
	if !n.IsDir() || child == nil {
		return
	}
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	n.Children[child.Name] = child
}

// Child returns the immediate child with the given name
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	c, ok := n.Children[name]
	return c, ok
}

// ChildNames returns the names of the immediate children in sorted order
func (n *Node) ChildNames() []string {
	if !n.IsDir() {
		return nil
	}
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Listing renders the children the way `ls` prints them: directories get a
// trailing slash and entries are separated by two spaces.
func (n *Node) Listing() string {
	names := n.ChildNames()
	entries := make([]string, 0, len(names))
	for _, name := range names {
		if n.Children[name].IsDir() {
			entries = append(entries, name+"/")
		} else {
			entries = append(entries, name)
		}
	}
	return strings.Join(entries, "  ")
}

// Walk visits n and every descendant depth-first in sorted order.
// path is the list of segments from n to the visited node; it is empty for n itself.
func (n *Node) Walk(fn func(path []string, node *Node)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func(path []string, node *Node)) {
	fn(path, n)
	for _, name := range n.ChildNames() {
		childPath := append(append([]string(nil), path...), name)
		n.Children[name].walk(childPath, fn)
	}
}
