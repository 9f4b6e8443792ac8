package engine

import "testing"

func TestPrimRefGet(t *testing.T) {
	stage := NewStage("Test")
	body, _ := stage.Create("/World/Body", TypeXform, nil, nil)

	ref := RefTo(body)
	if !ref.IsValid() {
		t.Error("Reference to an existing prim should be valid")
	}
	if ref.Get(stage) != body {
		t.Error("Get should resolve to the referenced prim")
	}

	dangling := PrimRef{Path: "/World/Missing"}
	if !dangling.IsValid() {
		t.Error("IsValid only checks that a path is set")
	}
	if dangling.Get(stage) != nil {
		t.Error("Get should return nil for a missing prim")
	}
}

func TestPrimRefSet(t *testing.T) {
	var ref PrimRef
	if ref.IsValid() {
		t.Error("Zero reference should be invalid")
	}
	if ref.Get(nil) != nil {
		t.Error("Get with a nil store should return nil")
	}

	p := newPrim("/A", TypeXform)
	ref.Set(p)
	if ref.Path != "/A" {
		t.Errorf("Expected path '/A', got '%s'", ref.Path)
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the reference")
	}
}

func TestRelationshipRef(t *testing.T) {
	stage := NewStage("Test")
	body, _ := stage.Create("/Body", TypeXform, nil, nil)
	joint, _ := stage.Create("/Joint", TypeFixedJoint, nil, nil)
	joint.SetRelationship("physics:body1", body.Path)

	if got := RelationshipRef(joint, "physics:body1").Get(stage); got != body {
		t.Errorf("Expected body1 to resolve to %s, got %v", body.Path, got)
	}
	if RelationshipRef(joint, "physics:body0").IsValid() {
		t.Error("Unauthored relationship should give an empty reference")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })
	e.AddListener(nil)

	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}

	e.Invoke(1)
	if sum != 11 {
		t.Errorf("Expected 11, got %d", sum)
	}

	e.RemoveAllListeners()
	e.Invoke(1)
	if sum != 11 {
		t.Error("Listeners should not run after RemoveAllListeners")
	}
}
