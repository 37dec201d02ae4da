package icontheme

import (
	"errors"
	"math"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Icons is the lookup entry point: an icon theme registry plus the
// configuration used to resolve names against it. Build one with New or
// WithOptions and share it; lookups are safe for concurrent use.
type Icons struct {
	opts   Options
	reg    *Registry
	logger zerolog.Logger
}

// New builds an Icons over the platform default configuration: default
// base directories, hicolor as default and baseline theme, svg/png/xpm
// extension priority.
func New() *Icons {
	return WithOptions(Options{})
}

// WithOptions builds an Icons with explicit configuration. Zero-valued
// fields fall back to platform defaults.
func WithOptions(opts Options) *Icons {
	opts = opts.withDefaults()
	return &Icons{
		opts:   opts,
		reg:    NewRegistry(opts),
		logger: *opts.Logger,
	}
}

// Registry exposes the underlying theme registry, e.g. for listing themes
// or inspecting discovery faults.
func (ic *Icons) Registry() *Registry {
	return ic.reg
}

// Rebuild re-discovers themes, picking up installs and removals since the
// registry was built.
func (ic *Icons) Rebuild() {
	ic.reg.Rebuild()
}

// FindDefaultIcon looks up an icon in the configured default theme.
func (ic *Icons) FindDefaultIcon(name string, size, scale int) (*ResolvedIcon, error) {
	return ic.FindIcon(name, size, scale, ic.opts.DefaultTheme)
}

// FindIconUnscaled looks up an icon at scale 1.
func (ic *Icons) FindIconUnscaled(name string, size int, theme string) (*ResolvedIcon, error) {
	return ic.FindIcon(name, size, 1, theme)
}

// FindIcon resolves an icon name for the requested size and scale,
// consulting the theme's inheritance chain, then the baseline theme, then
// the unthemed loose icons. An unknown theme name degrades to the
// baseline-only chain rather than failing. For fixed inputs and a fixed
// filesystem the returned path is always the same.
//
// Failure is reported as *NotFoundError; errors.Is(err, ErrIconNotFound)
// matches it. Not finding an icon is an expected outcome, not a fault.
func (ic *Icons) FindIcon(name string, size, scale int, theme string) (*ResolvedIcon, error) {
	chain, err := ic.reg.Chain(theme)
	if err != nil {
		var unknown *UnknownThemeError
		if !errors.As(err, &unknown) {
			return nil, err
		}
		ic.logger.Debug().Str("theme", theme).Msg("unknown theme, falling back to baseline chain")
	}

	probe := newProbeSet()
	for _, themeName := range chain {
		th := ic.reg.Theme(themeName)
		if th == nil {
			continue
		}
		if icon := ic.findInTheme(th, name, size, scale, probe); icon != nil {
			return icon, nil
		}
	}

	if path := ic.reg.findStandalone(name, ic.opts.Extensions); path != "" {
		return standaloneIcon(path), nil
	}

	return nil, &NotFoundError{Name: name, Size: size, Scale: scale}
}

// FindStandaloneIcon looks up a loose icon at the top level of the base
// directories, ignoring themes and sizes entirely.
func (ic *Icons) FindStandaloneIcon(name string) (*ResolvedIcon, error) {
	if path := ic.reg.findStandalone(name, ic.opts.Extensions); path != "" {
		return standaloneIcon(path), nil
	}
	return nil, &NotFoundError{Name: name}
}

// findInTheme probes one theme in two phases: first the subdirectories
// matching the requested size exactly, in declared order, then every
// subdirectory tracking the smallest distance. The strict less-than
// comparison keeps the earliest declared bucket on distance ties, which
// makes closest-match fallback deterministic.
func (ic *Icons) findInTheme(th *Theme, name string, size, scale int, probe *probeSet) *ResolvedIcon {
	dirs := th.Index.Directories

	for _, folder := range th.Folders {
		for i := range dirs {
			if !DirectoryMatches(&dirs[i], size, scale) {
				continue
			}
			if icon := ic.probeSubdir(th, folder, &dirs[i], name, probe); icon != nil {
				return icon
			}
		}
	}

	var best *ResolvedIcon
	bestDist := math.MaxInt
	for _, folder := range th.Folders {
		for i := range dirs {
			dist := SubdirDistance(&dirs[i], size, scale)
			if dist >= bestDist {
				continue
			}
			if icon := ic.probeSubdir(th, folder, &dirs[i], name, probe); icon != nil {
				best = icon
				bestDist = dist
			}
		}
	}
	return best
}

func (ic *Icons) probeSubdir(th *Theme, folder string, sub *SubdirSpec, name string, probe *probeSet) *ResolvedIcon {
	for _, ext := range ic.opts.Extensions {
		path := filepath.Join(folder, sub.Path, name+"."+ext)
		if !probe.exists(path) {
			ic.logger.Trace().Str("path", path).Msg("probe miss")
			continue
		}
		fileType, ok := fileTypeForExt(ext)
		if !ok {
			continue
		}
		return &ResolvedIcon{
			Path:       path,
			Theme:      th.Name,
			SubdirPath: sub.Path,
			Size:       sub.Size,
			Type:       fileType,
		}
	}
	return nil
}

func standaloneIcon(path string) *ResolvedIcon {
	fileType, _ := fileTypeForPath(path)
	return &ResolvedIcon{Path: path, Type: fileType}
}
