package engine

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Stage is an in-memory scene document: a tree of prims indexed by path.
// It is not safe for concurrent mutation.
type Stage struct {
	ID   uuid.UUID
	Name string

	// Headless marks a stage with no rendering backend attached. Visual
	// material factories author nothing on a headless stage.
	Headless bool

	// Document metadata. NewStage defaults to Z-up, one meter per unit.
	UpAxis        string
	MetersPerUnit float64

	// PrimCreated fires after every successful Create, including implicitly
	// defined ancestors.
	PrimCreated EventWithArg[*Prim]

	root  *Prim
	prims map[string]*Prim
}

func NewStage(name string) *Stage {
	root := newPrim("/", "")
	root.Name = ""
	s := &Stage{
		ID:            uuid.New(),
		Name:          name,
		UpAxis:        "Z",
		MetersPerUnit: 1,
		root:          root,
		prims:         make(map[string]*Prim),
	}
	root.Stage = s
	return s
}

// Root returns the pseudo-root. It is never returned by Get.
func (s *Stage) Root() *Prim {
	return s.root
}

func (s *Stage) Exists(path string) bool {
	_, ok := s.prims[path]
	return ok
}

func (s *Stage) Get(path string) *Prim {
	return s.prims[path]
}

// RenderingAvailable reports whether visual materials can be authored.
func (s *Stage) RenderingAvailable() bool {
	return !s.Headless
}

// Create defines a prim at path. Missing ancestors are defined as Xforms.
// A nil transform means identity; attrs are copied.
func (s *Stage) Create(path string, typ PrimType, xf *Transform, attrs map[string]any) (*Prim, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	if s.Exists(path) {
		return nil, &PathCollisionError{Path: path}
	}
	parent, err := s.ensureParent(ParentPath(path))
	if err != nil {
		return nil, fmt.Errorf("define ancestors of %s: %w", path, err)
	}

	p := newPrim(path, typ)
	p.Stage = s
	if xf != nil {
		p.Transform = *xf
	}
	for k, v := range attrs {
		p.attributes[k] = v
	}
	parent.AddChild(p)
	s.prims[path] = p
	s.PrimCreated.Invoke(p)
	return p, nil
}

func (s *Stage) ensureParent(path string) (*Prim, error) {
	if path == "/" {
		return s.root, nil
	}
	if p := s.Get(path); p != nil {
		return p, nil
	}
	return s.Create(path, TypeXform, nil, nil)
}

// Paths returns every authored path, sorted.
func (s *Stage) Paths() []string {
	paths := make([]string, 0, len(s.prims))
	for p := range s.prims {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func (s *Stage) Len() int {
	return len(s.prims)
}

// Traverse walks the stage depth-first in authoring order, skipping the
// pseudo-root. Returning false from fn prunes the subtree below that prim.
func (s *Stage) Traverse(fn func(p *Prim) bool) {
	var walk func(p *Prim)
	walk = func(p *Prim) {
		for _, c := range p.children {
			if fn(c) {
				walk(c)
			}
		}
	}
	walk(s.root)
}

// TraverseFrom walks the subtree rooted at start, including start itself.
func (s *Stage) TraverseFrom(start *Prim, fn func(p *Prim) bool) {
	if start == nil || !fn(start) {
		return
	}
	for _, c := range start.children {
		s.TraverseFrom(c, fn)
	}
}

// FindByAPI returns all prims with the API applied, in traversal order.
func (s *Stage) FindByAPI(api API) []*Prim {
	var result []*Prim
	s.Traverse(func(p *Prim) bool {
		if p.HasAPI(api) {
			result = append(result, p)
		}
		return true
	})
	return result
}
