package schemas

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapespawn/internal/engine"
)

// JointType is the kind of joint created between two bodies.
type JointType string

const (
	JointFixed     JointType = "Fixed"
	JointRevolute  JointType = "Revolute"
	JointPrismatic JointType = "Prismatic"
	JointSpherical JointType = "Spherical"
)

var ErrUnknownJointType = errors.New("unknown joint type")

// PrimType returns the prim schema type a joint of this kind is defined with.
func (j JointType) PrimType() (engine.PrimType, error) {
	switch j {
	case JointFixed:
		return engine.TypeFixedJoint, nil
	case JointRevolute:
		return engine.TypeRevoluteJoint, nil
	case JointPrismatic:
		return engine.TypePrismaticJoint, nil
	case JointSpherical:
		return engine.TypeSphericalJoint, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownJointType, string(j))
}

// Joint relationship and attribute names.
const (
	AttrBody0        = "physics:body0"
	AttrBody1        = "physics:body1"
	AttrLocalPos0    = "physics:localPos0"
	AttrLocalPos1    = "physics:localPos1"
	AttrLocalRot0    = "physics:localRot0"
	AttrLocalRot1    = "physics:localRot1"
	AttrJointEnabled = "physics:jointEnabled"
	AttrAxis         = "physics:axis"
)

// JointFunc creates a joint prim named name under basePath connecting body0
// to body1. A nil body0 anchors the joint to the world.
type JointFunc func(store engine.Store, jointType JointType, body0, body1 *engine.Prim, basePath, name string) (*engine.Prim, error)

var _ JointFunc = CreateJoint

// CreateJoint defines a joint at basePath/name. The joint frame sits at the
// origin of body1; localPos0/localRot0 express that frame in body0's space.
func CreateJoint(store engine.Store, jointType JointType, body0, body1 *engine.Prim, basePath, name string) (*engine.Prim, error) {
	if body1 == nil {
		return nil, fmt.Errorf("create %s joint: body1 is required", jointType)
	}
	typ, err := jointType.PrimType()
	if err != nil {
		return nil, err
	}

	frame0 := engine.IdentityTransform()
	if body0 != nil {
		frame0 = body0.WorldTransform()
	}
	frame1 := body1.WorldTransform()

	inv0 := rl.QuaternionInvert(frame0.Orientation)
	offset := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(frame1.Translation, frame0.Translation), inv0)
	localPos0 := unscale(offset, frame0.Scale)
	localRot0 := rl.QuaternionNormalize(rl.QuaternionMultiply(inv0, frame1.Orientation))

	joint, err := store.Create(engine.JoinPath(basePath, name), typ, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s joint: %w", jointType, err)
	}

	if ref := engine.RefTo(body0); ref.IsValid() {
		joint.SetRelationship(AttrBody0, ref.Path)
	}
	joint.SetRelationship(AttrBody1, engine.RefTo(body1).Path)
	joint.SetAttribute(AttrLocalPos0, localPos0)
	joint.SetAttribute(AttrLocalRot0, localRot0)
	joint.SetAttribute(AttrLocalPos1, rl.Vector3Zero())
	joint.SetAttribute(AttrLocalRot1, rl.QuaternionIdentity())
	joint.SetAttribute(AttrJointEnabled, true)
	if jointType == JointRevolute || jointType == JointPrismatic {
		joint.SetAttribute(AttrAxis, "X")
	}
	return joint, nil
}

func unscale(v, scale rl.Vector3) rl.Vector3 {
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return v
	}
	return rl.Vector3Divide(v, scale)
}
