// Package schemas applies physics API schemas and their attributes to prims.
//
// Every property bundle has optional fields: a nil field is left unauthored so
// the physics engine falls back to its own default.
package schemas

import (
	"fmt"
	"strings"

	"shapespawn/internal/engine"
)

// Attribute namespaces.
const (
	NamespacePhysics           = "physics"
	NamespacePhysxRigidBody    = "physxRigidBody"
	NamespacePhysxCollision    = "physxCollision"
	NamespacePhysxArticulation = "physxArticulation"
	NamespacePhysxMaterial     = "physxMaterial"
	NamespacePhysxContact      = "physxContactReport"
)

// ToCamelCase converts a snake_case name to camelCase.
func ToCamelCase(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	b.Grow(len(snake))
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// AttributeName returns the namespaced camelCase attribute for a snake_case field.
func AttributeName(namespace, field string) string {
	return fmt.Sprintf("%s:%s", namespace, ToCamelCase(field))
}

// SetAttributes authors every value under namespace, converting keys to camelCase.
func SetAttributes(prim *engine.Prim, namespace string, values map[string]any) {
	for field, value := range values {
		prim.SetAttribute(AttributeName(namespace, field), value)
	}
}

// split moves the named keys out of values into a new map.
func split(values map[string]any, keys ...string) map[string]any {
	out := make(map[string]any)
	for _, k := range keys {
		if v, ok := values[k]; ok {
			out[k] = v
			delete(values, k)
		}
	}
	return out
}

func put[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

// Ptr returns a pointer to v, for filling optional property fields.
func Ptr[T any](v T) *T {
	return &v
}
