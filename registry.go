package icontheme

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Registry holds every theme discovered under a set of base directories,
// plus the loose (unthemed) icons found at the base directories' top level.
//
// A registry is built once and is then safe for concurrent lookups: the
// only mutable state after construction is the inheritance chain memo,
// which is guarded by a lock and idempotent. Call Rebuild to pick up themes
// installed or removed after construction.
type Registry struct {
	baseDirs        []string
	baseline        string
	includeBaseline bool
	logger          zerolog.Logger

	mu         sync.RWMutex
	themes     map[string]*Theme
	standalone []string
	faults     map[string]error
	chains     map[string][]string
}

// NewRegistry discovers themes and loose icons under the configured base
// directories. Malformed themes are skipped and recorded, not fatal: one
// broken descriptor must not block lookups in every other theme.
func NewRegistry(opts Options) *Registry {
	opts = opts.withDefaults()

	reg := &Registry{
		baseDirs:        absAll(opts.BaseDirs),
		baseline:        opts.BaselineTheme,
		includeBaseline: !opts.DisableBaselineFallback,
		logger:          *opts.Logger,
	}
	reg.discoverLocked()
	return reg
}

// Rebuild re-discovers themes and loose icons, discarding parsed indexes
// and memoized chains. Lookups running concurrently see either the old or
// the new view, never a mix.
func (r *Registry) Rebuild() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discoverLocked()
}

// discoverLocked walks each base directory in priority order. Directories
// become theme candidates, keyed by name with folders from every base dir;
// top-level image files become standalone icons. The first base directory
// carrying an index.theme wins for a given theme name.
func (r *Registry) discoverLocked() {
	r.themes = make(map[string]*Theme)
	r.faults = make(map[string]error)
	r.chains = make(map[string][]string)
	r.standalone = nil

	folders := make(map[string][]string)
	var order []string

	for _, baseDir := range r.baseDirs {
		entries, err := os.ReadDir(baseDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			path := filepath.Join(baseDir, entry.Name())
			if entry.IsDir() {
				name := entry.Name()
				if _, seen := folders[name]; !seen {
					order = append(order, name)
				}
				folders[name] = append(folders[name], path)
				continue
			}
			if _, ok := fileTypeForPath(path); ok {
				r.standalone = append(r.standalone, path)
			}
		}
	}

	for _, name := range order {
		theme, err := loadTheme(name, folders[name])
		if err != nil {
			if errors.Is(err, ErrNoThemeIndex) {
				// An ordinary directory, not a broken theme.
				continue
			}
			r.faults[name] = err
			r.logger.Debug().Err(err).Str("theme", name).Msg("skipping malformed theme")
			continue
		}
		r.themes[name] = theme
	}

	r.logger.Debug().
		Int("themes", len(r.themes)).
		Int("standalone", len(r.standalone)).
		Int("faults", len(r.faults)).
		Msg("icon registry built")
}

// Theme returns the discovered theme with the given internal name, or nil.
func (r *Registry) Theme(name string) *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.themes[name]
}

// ThemeNames returns the internal names of all valid discovered themes,
// sorted for stable listing.
func (r *Registry) ThemeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Faults returns the per-theme errors recorded while skipping malformed
// descriptors during the last discovery.
func (r *Registry) Faults() map[string]error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	faults := make(map[string]error, len(r.faults))
	for name, err := range r.faults {
		faults[name] = err
	}
	return faults
}

// BaseDirs returns the base directories in priority order.
func (r *Registry) BaseDirs() []string {
	return append([]string(nil), r.baseDirs...)
}

// Chain flattens a theme's inheritance into the ordered sequence of theme
// names consulted during a lookup: the theme itself, its ancestors
// depth-first in declared-parent order with repeats kept at their first
// position, then the baseline appended once. Cycles are broken by the
// visited set; a theme reappearing mid-traversal is skipped, not
// re-descended.
//
// An unknown theme yields an UnknownThemeError together with the
// baseline-only chain, so callers can degrade instead of aborting.
func (r *Registry) Chain(name string) ([]string, error) {
	r.mu.RLock()
	chain, ok := r.chains[name]
	r.mu.RUnlock()
	if ok {
		return chain, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if chain, ok := r.chains[name]; ok {
		return chain, nil
	}

	visited := make(map[string]bool)
	chain = r.flatten(name, visited, nil)
	if r.includeBaseline && !visited[r.baseline] {
		chain = append(chain, r.baseline)
	}

	if _, known := r.themes[name]; !known {
		return chain, &UnknownThemeError{Theme: name}
	}

	r.chains[name] = chain
	return chain, nil
}

func (r *Registry) flatten(name string, visited map[string]bool, chain []string) []string {
	if visited[name] {
		return chain
	}
	visited[name] = true

	theme, ok := r.themes[name]
	if !ok {
		// A descriptor may inherit a theme that is not installed; the name
		// stays out of the chain but is still marked visited so repeated
		// references are not re-probed.
		return chain
	}

	chain = append(chain, name)
	for _, parent := range theme.Index.Inherits {
		chain = r.flatten(parent, visited, chain)
	}
	return chain
}

// findStandalone returns the loose icon matching name, honoring extension
// priority first and discovery order second.
func (r *Registry) findStandalone(name string, extensions []string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ext := range extensions {
		want := name + "." + ext
		for _, path := range r.standalone {
			if strings.EqualFold(filepath.Base(path), want) {
				return path
			}
		}
	}
	return ""
}

// loadTheme parses the first index.theme found across the theme's folders.
func loadTheme(name string, themeFolders []string) (*Theme, error) {
	var indexPath string
	for _, folder := range themeFolders {
		candidate := filepath.Join(folder, IndexFileName)
		if fileExists(candidate) {
			indexPath = candidate
			break
		}
	}
	if indexPath == "" {
		return nil, ErrNoThemeIndex
	}

	index, err := LoadThemeIndex(indexPath)
	if err != nil {
		return nil, err
	}

	return &Theme{
		Name:      name,
		Folders:   append([]string(nil), themeFolders...),
		IndexPath: indexPath,
		Index:     index,
	}, nil
}

func absAll(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		out = append(out, dir)
	}
	return out
}
