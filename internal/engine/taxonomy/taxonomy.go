package taxonomy

import (
	"fmt"

	"github.com/crimson-sun/skylog/internal/model"
)

// Node is a family or a leaf kind in the event catalogue.
type Node struct {
	Name     string
	Desc     string
	Unit     string     // leaves only; empty for payload-free kinds
	Kind     model.Kind // leaves only
	Children []*Node
}

// Taxonomy indexes the catalogue tree by kind.
type Taxonomy struct {
	roots  []*Node
	leaves map[model.Kind]*Node
}

// New indexes roots. Every leaf must name its kind, and no kind may appear twice.
func New(roots []*Node) (*Taxonomy, error) {
	t := &Taxonomy{roots: roots, leaves: make(map[model.Kind]*Node)}
	for _, root := range roots {
		for _, leaf := range root.Children {
			if !leaf.Kind.Valid() || leaf.Name != leaf.Kind.String() {
				return nil, fmt.Errorf("taxonomy: leaf %q does not match kind %s", leaf.Name, leaf.Kind)
			}
			if _, dup := t.leaves[leaf.Kind]; dup {
				return nil, fmt.Errorf("taxonomy: kind %s listed twice", leaf.Kind)
			}
			t.leaves[leaf.Kind] = leaf
		}
	}
	return t, nil
}

// Default returns the built-in catalogue.
func Default() *Taxonomy {
	t, err := New(DefaultRoots())
	if err != nil {
		panic(err)
	}
	return t
}

// Roots returns the top-level family nodes.
func (t *Taxonomy) Roots() []*Node {
	return t.roots
}

// Describe returns the description of k, or its name if uncatalogued.
func (t *Taxonomy) Describe(k model.Kind) string {
	if n, ok := t.leaves[k]; ok {
		return n.Desc
	}
	return k.String()
}

// Unit returns the unit of k's payload value, if any.
func (t *Taxonomy) Unit(k model.Kind) string {
	if n, ok := t.leaves[k]; ok {
		return n.Unit
	}
	return ""
}
