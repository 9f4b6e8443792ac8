package engine

import (
	"fmt"
	"path"
	"strings"
)

// ValidatePath checks that p is an absolute prim path made of identifier segments.
func ValidatePath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, p)
	}
	if p == "/" {
		return fmt.Errorf("%w: the pseudo-root cannot be authored", ErrInvalidPath)
	}
	for _, seg := range strings.Split(p[1:], "/") {
		if !isIdentifier(seg) {
			return fmt.Errorf("%w: bad segment %q in %q", ErrInvalidPath, seg, p)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// ParentPath returns the parent of p; the parent of a top-level prim is "/".
func ParentPath(p string) string {
	return path.Dir(p)
}

// BaseName returns the last segment of p.
func BaseName(p string) string {
	return path.Base(p)
}

// JoinPath appends relative segments to an absolute prim path.
func JoinPath(parent string, elem ...string) string {
	return path.Join(append([]string{parent}, elem...)...)
}

// IsAbsolute reports whether p is rooted at the pseudo-root.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, "/")
}
