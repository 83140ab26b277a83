package lattice

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/dlasim/internal/vec"
)

// ErrUnknown indicates a lattice name with no registered constructor.
var ErrUnknown = errors.New("lattice: unknown lattice")

var planar = map[string]func() Lattice[vec.Vec2]{
	"triangular": Triangular,
	"square":     Square,
}

var spatial = map[string]func() Lattice[vec.Vec3]{
	"cubic":     SimpleCubic,
	"hexagonal": Hexagonal,
}

// Planar returns the 2D lattice registered under name.
func Planar(name string) (Lattice[vec.Vec2], error) {
	fn, ok := planar[name]
	if !ok {
		return Lattice[vec.Vec2]{}, fmt.Errorf("%w: %q (2D: %v)", ErrUnknown, name, Names2D())
	}
	return fn(), nil
}

// Spatial returns the 3D lattice registered under name.
func Spatial(name string) (Lattice[vec.Vec3], error) {
	fn, ok := spatial[name]
	if !ok {
		return Lattice[vec.Vec3]{}, fmt.Errorf("%w: %q (3D: %v)", ErrUnknown, name, Names3D())
	}
	return fn(), nil
}

// Is3D reports whether name is a registered 3D lattice.
func Is3D(name string) bool {
	_, ok := spatial[name]
	return ok
}

func Names2D() []string { return sortedKeys(planar) }
func Names3D() []string { return sortedKeys(spatial) }

func sortedKeys[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
