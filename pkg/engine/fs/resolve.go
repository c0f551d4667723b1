package fs

import "strings"

// Resolve walks path from root one segment at a time.
// It reports false as soon as a segment is missing or a file is traversed into.
func Resolve(root *Node, path []string) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	current := root
	for _, segment := range path {
		next, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// ResolveDir is Resolve restricted to directory targets
func ResolveDir(root *Node, path []string) (*Node, bool) {
	n, ok := Resolve(root, path)
	if !ok || !n.IsDir() {
		return nil, false
	}
	return n, true
}

// Format renders a path as an absolute slash-separated string
func Format(path []string) string {
	return "/" + strings.Join(path, "/")
}

// Complete returns the first child of dir, in sorted order, whose name starts
// with partial. An empty partial never completes.
func Complete(dir *Node, partial string) (string, bool) {
	if partial == "" {
		return "", false
	}
	for _, name := range dir.ChildNames() {
		if strings.HasPrefix(name, partial) {
			return name, true
		}
	}
	return "", false
}
