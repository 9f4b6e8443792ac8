package engine

// PrimSnapshot is a detached, comparable copy of one prim.
type PrimSnapshot struct {
	Path          string              `json:"path"`
	Type          PrimType            `json:"type"`
	Translation   [3]float32          `json:"translation"`
	Orientation   [4]float32          `json:"orientation"` // x, y, z, w
	Scale         [3]float32          `json:"scale"`
	APIs          []API               `json:"apis,omitempty"`
	Attributes    map[string]any      `json:"attributes,omitempty"`
	Relationships map[string][]string `json:"relationships,omitempty"`
}

// Snapshot copies every prim in traversal order.
func (s *Stage) Snapshot() []PrimSnapshot {
	var out []PrimSnapshot
	s.Traverse(func(p *Prim) bool {
		out = append(out, p.Snapshot())
		return true
	})
	return out
}

func (p *Prim) Snapshot() PrimSnapshot {
	t := p.Transform
	snap := PrimSnapshot{
		Path:        p.Path,
		Type:        p.Type,
		Translation: [3]float32{t.Translation.X, t.Translation.Y, t.Translation.Z},
		Orientation: [4]float32{t.Orientation.X, t.Orientation.Y, t.Orientation.Z, t.Orientation.W},
		Scale:       [3]float32{t.Scale.X, t.Scale.Y, t.Scale.Z},
		APIs:        p.AppliedAPIs(),
	}
	if len(p.attributes) > 0 {
		snap.Attributes = p.Attributes()
	}
	if len(p.relationships) > 0 {
		snap.Relationships = make(map[string][]string, len(p.relationships))
		for _, name := range p.RelationshipNames() {
			snap.Relationships[name], _ = p.Relationship(name)
		}
	}
	if len(snap.APIs) == 0 {
		snap.APIs = nil
	}
	return snap
}
