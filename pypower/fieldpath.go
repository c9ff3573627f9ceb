package pypower

import (
	"fmt"
	"strings"

	"github.com/huandalu/pypower/types"
)

// Field paths are explicit key lists. A single-element path addresses a
// standard table or a top-level extension field; longer paths descend
// through nested string-keyed extension field maps to a matrix leaf.

func caseGetPath(c *types.Case, path []string) (*types.Matrix, error) {
	if len(path) == 1 {
		if m, ok := c.Table(path[0]); ok {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path[0])
	}
	node, ok := c.Fields[path[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path[0])
	}
	return treeGetPath(node, path)
}

func snapshotGetPath(s *types.Snapshot, path []string) (*types.Matrix, error) {
	if len(path) == 1 {
		if m, ok := s.Table(path[0]); ok {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path[0])
	}
	node, ok := s.Fields[path[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path[0])
	}
	return treeGetPath(node, path)
}

// treeGetPath walks path[1:] down nested field maps starting at node
// (already resolved for path[0]) and returns the matrix leaf.
func treeGetPath(node any, path []string) (*types.Matrix, error) {
	for i, key := range path[1:] {
		fields, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a nested field map", ErrUnknownField, strings.Join(path[:i+1], "."))
		}
		if node, ok = fields[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, strings.Join(path[:i+2], "."))
		}
	}
	m, ok := node.(*types.Matrix)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not hold a table", ErrUnknownField, strings.Join(path, "."))
	}
	return m, nil
}

func caseSetPath(c *types.Case, path []string, m *types.Matrix) error {
	if len(path) == 1 {
		c.SetTable(path[0], m)
		return nil
	}
	if c.Fields == nil {
		c.Fields = make(map[string]any)
	}
	return treeSetPath(c.Fields, path, m)
}

func snapshotSetPath(s *types.Snapshot, path []string, m *types.Matrix) error {
	if len(path) == 1 {
		s.SetTable(path[0], m)
		return nil
	}
	if s.Fields == nil {
		s.Fields = make(map[string]any)
	}
	return treeSetPath(s.Fields, path, m)
}

// treeSetPath stores m at path inside nested field maps rooted at fields,
// creating intermediate maps as needed.
func treeSetPath(fields map[string]any, path []string, m *types.Matrix) error {
	node := fields
	for i, key := range path[:len(path)-1] {
		next, ok := node[key]
		if !ok {
			child := make(map[string]any)
			node[key] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not a nested field map", ErrUnknownField, strings.Join(path[:i+1], "."))
		}
		node = child
	}
	node[path[len(path)-1]] = m
	return nil
}
