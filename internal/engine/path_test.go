package engine

import "testing"

func TestPathHelpers(t *testing.T) {
	if got := ParentPath("/World/Cube"); got != "/World" {
		t.Errorf("ParentPath = %s", got)
	}
	if got := ParentPath("/World"); got != "/" {
		t.Errorf("ParentPath of a top-level prim = %s, want /", got)
	}
	if got := BaseName("/World/Cube"); got != "Cube" {
		t.Errorf("BaseName = %s", got)
	}
	if got := JoinPath("/World/Cube/geometry", "material"); got != "/World/Cube/geometry/material" {
		t.Errorf("JoinPath = %s", got)
	}
	if !IsAbsolute("/Looks/Red") || IsAbsolute("material") {
		t.Error("IsAbsolute classification wrong")
	}
	if err := ValidatePath("/World/env_0/Cube_1"); err != nil {
		t.Errorf("Expected valid path, got %v", err)
	}
}
