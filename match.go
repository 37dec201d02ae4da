package icontheme

import "math"

// DirectoryMatches reports whether a subdirectory serves icons at exactly
// the requested size and scale.
func DirectoryMatches(sub *SubdirSpec, size, scale int) bool {
	if sub.Scale != scale {
		return false
	}
	switch sub.Type {
	case DirFixed:
		return sub.Size == size
	case DirScalable:
		return sub.MinSize <= size && size <= sub.MaxSize
	default:
		return absDiff(sub.Size, size) <= sub.Threshold
	}
}

// SubdirDistance returns how far a subdirectory is from the requested size
// and scale, in scaled pixels. Zero means an exact fit; lower is better.
func SubdirDistance(sub *SubdirSpec, size, scale int) int {
	target := size * scale

	switch sub.Type {
	case DirFixed, DirScalable:
		return absDiff(sub.Size*sub.Scale, target)
	default:
		lower := (sub.Size - sub.Threshold) * sub.Scale
		upper := (sub.Size + sub.Threshold) * sub.Scale
		switch {
		case target < lower:
			return absDiff(sub.MinSize*sub.Scale, target)
		case target > upper:
			return absDiff(sub.MaxSize*sub.Scale, target)
		default:
			return 0
		}
	}
}

// BestSubdir picks the most suitable bucket for the requested size and
// scale: the first exact match in declared order, otherwise the closest
// bucket by SubdirDistance. Ties keep the bucket declared earliest, so the
// choice is deterministic for a fixed index. Returns nil when the index has
// no directories.
func BestSubdir(index *ThemeIndex, size, scale int) *SubdirSpec {
	for i := range index.Directories {
		if DirectoryMatches(&index.Directories[i], size, scale) {
			return &index.Directories[i]
		}
	}

	best := (*SubdirSpec)(nil)
	bestDist := math.MaxInt
	for i := range index.Directories {
		if dist := SubdirDistance(&index.Directories[i], size, scale); dist < bestDist {
			best = &index.Directories[i]
			bestDist = dist
		}
	}
	return best
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
