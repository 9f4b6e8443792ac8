package engine

// PrimRef is a serializable reference to a prim by path, as authored on
// relationships such as a joint's body targets.
//
// Example:
//
//	ref := engine.RelationshipRef(joint, "physics:body1")
//	if body := ref.Get(stage); body != nil {
//	    // use the body...
//	}
type PrimRef struct {
	Path string // empty = none
}

// RefTo returns a reference to p, or an empty reference for nil.
func RefTo(p *Prim) PrimRef {
	var r PrimRef
	r.Set(p)
	return r
}

// RelationshipRef returns a reference to the first target of a relationship on p.
func RelationshipRef(p *Prim, name string) PrimRef {
	targets, _ := p.Relationship(name)
	if len(targets) == 0 {
		return PrimRef{}
	}
	return PrimRef{Path: targets[0]}
}

// Get resolves the reference. Returns nil if the reference is empty or if
// the prim doesn't exist.
func (r PrimRef) Get(store Store) *Prim {
	if r.Path == "" || store == nil {
		return nil
	}
	return store.Get(r.Path)
}

// IsValid returns true if the reference points to something.
// Note: This doesn't check if the prim actually exists in the store.
func (r PrimRef) IsValid() bool {
	return r.Path != ""
}

// Set points the reference at p. Pass nil to clear it.
func (r *PrimRef) Set(p *Prim) {
	if p == nil {
		r.Path = ""
	} else {
		r.Path = p.Path
	}
}
