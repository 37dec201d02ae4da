package icontheme

import "os"

// probeSet memoizes file existence checks for the duration of one lookup.
// A lookup can probe the same path through several themes sharing a folder,
// so the memo saves repeated stats without holding state across lookups.
type probeSet struct {
	seen map[string]bool
}

func newProbeSet() *probeSet {
	return &probeSet{seen: make(map[string]bool)}
}

// exists reports whether path is a regular file. Inaccessible paths count
// as absent so resolution keeps trying other candidates instead of
// aborting on a permission error.
func (p *probeSet) exists(path string) bool {
	if hit, ok := p.seen[path]; ok {
		return hit
	}
	found := fileExists(path)
	p.seen[path] = found
	return found
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
