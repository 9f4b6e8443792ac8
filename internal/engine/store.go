package engine

// Store is the node-store contract spawners build against.
// Defined here so spawners and schema helpers avoid depending on *Stage.
type Store interface {
	Exists(path string) bool
	Get(path string) *Prim
	Create(path string, typ PrimType, xf *Transform, attrs map[string]any) (*Prim, error)
}

// Document is a Store that can also enumerate its paths.
type Document interface {
	Store
	Paths() []string
}

// RenderTarget is implemented by stores that know whether a rendering backend is attached.
type RenderTarget interface {
	RenderingAvailable() bool
}

var _ Document = (*Stage)(nil)
var _ RenderTarget = (*Stage)(nil)
