package engine

// API names an applied API schema: a capability bundle attached to a prim at runtime.
type API string

const (
	RigidBodyAPI          API = "PhysicsRigidBodyAPI"
	PhysxRigidBodyAPI     API = "PhysxRigidBodyAPI"
	MassAPI               API = "PhysicsMassAPI"
	CollisionAPI          API = "PhysicsCollisionAPI"
	PhysxCollisionAPI     API = "PhysxCollisionAPI"
	ArticulationRootAPI   API = "PhysicsArticulationRootAPI"
	PhysxArticulationAPI  API = "PhysxArticulationAPI"
	MaterialBindingAPI    API = "MaterialBindingAPI"
	PhysicsMaterialAPI    API = "PhysicsMaterialAPI"
	PhysxMaterialAPI      API = "PhysxMaterialAPI"
	PhysxContactReportAPI API = "PhysxContactReportAPI"
)
