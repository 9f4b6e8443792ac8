// Package spawners runs a spawn function over every prim path a pattern
// names.
package spawners

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jinzhu/copier"

	"shapespawn/internal/engine"
)

var ErrNoMatch = errors.New("no prims match pattern")

// SpawnFunc spawns one asset at path. cfg is owned by the call.
type SpawnFunc[C any] func(path string, cfg *C) (*engine.Prim, error)

var plainParent = regexp.MustCompile(`^[a-zA-Z0-9/_]+$`)

// Expand spawns cfg at pattern. When the parent part of pattern is a regular
// expression, e.g. "/World/env_.*/Cube", it is matched against the existing
// prims at that depth and one asset is spawned below each match. Every call
// gets its own deep copy of cfg.
func Expand[C any](doc engine.Document, pattern string, cfg *C, fn SpawnFunc[C]) ([]*engine.Prim, error) {
	parent, leaf := engine.ParentPath(pattern), engine.BaseName(pattern)

	var targets []string
	if parent == "/" || plainParent.MatchString(parent) {
		targets = []string{pattern}
	} else {
		parents, err := MatchPaths(doc, parent)
		if err != nil {
			return nil, err
		}
		if len(parents) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, parent)
		}
		for _, p := range parents {
			targets = append(targets, engine.JoinPath(p, leaf))
		}
	}

	prims := make([]*engine.Prim, 0, len(targets))
	for _, target := range targets {
		dup := new(C)
		if err := copier.CopyWithOption(dup, cfg, copier.Option{DeepCopy: true}); err != nil {
			return prims, fmt.Errorf("copy config for %s: %w", target, err)
		}
		prim, err := fn(target, dup)
		if err != nil {
			return prims, err
		}
		prims = append(prims, prim)
	}
	return prims, nil
}

// MatchPaths returns the existing paths, sorted, that fully match expr and
// have as many segments as expr.
func MatchPaths(doc engine.Document, expr string) ([]string, error) {
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	depth := strings.Count(expr, "/")
	var out []string
	for _, p := range doc.Paths() {
		if strings.Count(p, "/") == depth && re.MatchString(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
