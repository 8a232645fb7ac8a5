package sva

// Boundary selects how neighbor lookups at raster edges are resolved.
type Boundary int

const (
	// BoundaryMirror reflects out-of-bounds neighbors back into the
	// interior, so an edge pixel sees its single interior neighbor doubled.
	// This is the default: it avoids artificially damping edge weights.
	BoundaryMirror Boundary = iota

	// BoundaryZero treats out-of-bounds neighbors as zero samples.
	BoundaryZero

	// BoundarySuppress disables the correction along an axis whenever one
	// of its neighbors falls outside the raster.
	BoundarySuppress
)

// String returns the policy name used on CLI flags and in config files.
func (b Boundary) String() string {
	switch b {
	case BoundaryMirror:
		return "mirror"
	case BoundaryZero:
		return "zero"
	case BoundarySuppress:
		return "suppress"
	default:
		return "unknown"
	}
}

func (b Boundary) valid() bool {
	return b >= BoundaryMirror && b <= BoundarySuppress
}

// axisNeighbors resolves the two neighbor indices along one axis for
// coordinate i in a dimension of size n. An index of -1 contributes a zero
// sample. ok reports whether the axis carries any correction at all; a
// dimension of length < 2 never does, regardless of policy.
func axisNeighbors(b Boundary, i, n int) (lo, hi int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}

	if i > 0 && i < n-1 {
		return i - 1, i + 1, true
	}

	switch b {
	case BoundaryMirror:
		if i == 0 {
			return 1, 1, true
		}
		return n - 2, n - 2, true
	case BoundaryZero:
		if i == 0 {
			return -1, 1, true
		}
		return n - 2, -1, true
	default:
		return 0, 0, false
	}
}
