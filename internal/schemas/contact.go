package schemas

import (
	"errors"
	"fmt"

	"shapespawn/internal/engine"
)

var ErrNoRigidBodies = errors.New("no rigid bodies found")

// ActivateContactSensors applies the contact report API with a zero threshold
// to every rigid body at or below prim. It fails when there is none.
func ActivateContactSensors(prim *engine.Prim) (int, error) {
	if prim == nil {
		return 0, errNilPrim("contact report")
	}
	count := 0
	var walk func(p *engine.Prim)
	walk = func(p *engine.Prim) {
		if p.HasAPI(engine.RigidBodyAPI) {
			p.ApplyAPI(engine.PhysxContactReportAPI)
			p.SetAttribute(AttributeName(NamespacePhysxContact, "threshold"), float32(0))
			count++
		}
		for _, c := range p.Children() {
			walk(c)
		}
	}
	walk(prim)
	if count == 0 {
		return 0, fmt.Errorf("activate contact sensors under %s: %w", prim.Path, ErrNoRigidBodies)
	}
	return count, nil
}
