package icontheme

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	// DefaultTheme is the theme consulted when the caller names none.
	DefaultTheme = "hicolor"
	// BaselineTheme terminates every inheritance chain. hicolor is the
	// universally installed fallback theme on freedesktop systems.
	BaselineTheme = "hicolor"
)

// DefaultExtensions is the probe order of icon file extensions. SVG comes
// first because it scales losslessly.
var DefaultExtensions = []string{"svg", "png", "xpm"}

// Options configure an Icons instance or a Registry. The zero value selects
// the platform defaults throughout, so Options{} behaves like New.
type Options struct {
	// BaseDirs lists the directories searched for themes and loose icons,
	// highest priority first. Empty selects DefaultBaseDirs.
	BaseDirs []string

	// DefaultTheme is used by FindDefaultIcon and when no theme is named.
	// Empty selects the platform default.
	DefaultTheme string

	// BaselineTheme is appended to every inheritance chain. Empty selects
	// the platform baseline.
	BaselineTheme string

	// DisableBaselineFallback skips appending the baseline theme to chains.
	DisableBaselineFallback bool

	// Extensions is the probe order of file extensions, without dots.
	// Empty selects DefaultExtensions.
	Extensions []string

	// Logger receives diagnostic events: malformed themes skipped during
	// discovery, unknown-theme fallbacks, probe traces. Nil means no
	// logging. A failed lookup is a normal outcome and is never logged as
	// an error.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if len(o.BaseDirs) == 0 {
		o.BaseDirs = DefaultBaseDirs()
	}
	if o.DefaultTheme == "" {
		o.DefaultTheme = DefaultTheme
	}
	if o.BaselineTheme == "" {
		o.BaselineTheme = BaselineTheme
	}
	if len(o.Extensions) == 0 {
		o.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// DefaultBaseDirs returns the conventional icon locations in priority
// order: $HOME/.icons (kept for backwards compatibility),
// $XDG_DATA_HOME/icons, every $XDG_DATA_DIRS entry's icons directory, and
// finally /usr/share/pixmaps for loose icons.
func DefaultBaseDirs() []string {
	dirs := make([]string, 0, 5)

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".icons"))
	}
	if xdg.DataHome != "" {
		dirs = append(dirs, filepath.Join(xdg.DataHome, "icons"))
	}
	for _, dataDir := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(dataDir, "icons"))
	}
	dirs = append(dirs, "/usr/share/pixmaps")

	return dirs
}
