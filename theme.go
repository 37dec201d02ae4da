// Package icontheme resolves logical icon names to image files on disk
// following the freedesktop icon theme layout: named themes inherit from
// parent themes, each theme declares size-bucketed subdirectories, and
// lookups fall back through the inheritance chain to a baseline theme and
// finally to loose, unthemed icons.
package icontheme

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNoThemeIndex is returned when a theme directory has no index.theme.
	ErrNoThemeIndex = errors.New("no index.theme descriptor found")
	// ErrIconNotFound is returned when no file matches a lookup.
	ErrIconNotFound = errors.New("icon not found")
	// ErrUnknownTheme is returned when a theme name has no descriptor in any
	// configured base directory.
	ErrUnknownTheme = errors.New("unknown theme")
)

// NotFoundError reports a lookup that exhausted the inheritance chain and
// the unthemed fallback without finding a file.
type NotFoundError struct {
	Name  string
	Size  int
	Scale int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("icon %q not found at size %d scale %d", e.Name, e.Size, e.Scale)
}

func (e *NotFoundError) Unwrap() error { return ErrIconNotFound }

// MalformedDescriptorError reports an index.theme that is present but
// violates the descriptor schema.
type MalformedDescriptorError struct {
	Path    string
	Group   string
	Message string
	Err     error
}

func (e *MalformedDescriptorError) Error() string {
	msg := fmt.Sprintf("malformed descriptor %s: group %q: %s", e.Path, e.Group, e.Message)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDescriptorError) Unwrap() error { return e.Err }

// UnknownThemeError reports a requested theme with no descriptor anywhere in
// the configured base directories. Lookups still proceed using the baseline
// theme when they see this error.
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Theme)
}

func (e *UnknownThemeError) Unwrap() error { return ErrUnknownTheme }

// DirType classifies how a theme subdirectory matches requested sizes.
type DirType int

const (
	// DirFixed matches only its exact nominal size.
	DirFixed DirType = iota
	// DirScalable matches any size within [MinSize, MaxSize].
	DirScalable
	// DirThreshold matches sizes within Threshold of the nominal size.
	DirThreshold
)

func (t DirType) String() string {
	switch t {
	case DirFixed:
		return "Fixed"
	case DirScalable:
		return "Scalable"
	default:
		return "Threshold"
	}
}

func parseDirType(value string) (DirType, error) {
	switch value {
	case "Fixed":
		return DirFixed, nil
	case "Scalable":
		return DirScalable, nil
	case "Threshold":
		return DirThreshold, nil
	default:
		return DirThreshold, fmt.Errorf("invalid directory type %q", value)
	}
}

// FileType identifies a supported icon file format by extension.
type FileType int

const (
	FileTypePNG FileType = iota
	FileTypeSVG
	FileTypeXPM
)

func (t FileType) String() string {
	switch t {
	case FileTypePNG:
		return "png"
	case FileTypeSVG:
		return "svg"
	default:
		return "xpm"
	}
}

func fileTypeForExt(ext string) (FileType, bool) {
	switch {
	case strings.EqualFold(ext, "png"):
		return FileTypePNG, true
	case strings.EqualFold(ext, "svg"):
		return FileTypeSVG, true
	case strings.EqualFold(ext, "xpm"):
		return FileTypeXPM, true
	default:
		return 0, false
	}
}

func fileTypeForPath(path string) (FileType, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, false
	}
	return fileTypeForExt(ext)
}

// SubdirSpec describes one icon-size bucket within a theme, parsed from a
// directory group of index.theme.
type SubdirSpec struct {
	// Path is the bucket's location relative to the theme folder,
	// e.g. "32x32/apps".
	Path string
	// Size is the nominal icon size in pixels.
	Size int
	// MinSize and MaxSize bound Scalable matching. Both default to Size.
	MinSize int
	MaxSize int
	// Threshold bounds Threshold matching around Size. Defaults to 2.
	Threshold int
	// Scale is the display scale factor the bucket targets. Defaults to 1.
	Scale int
	// Type selects the matching rule.
	Type DirType
	// Context is the informational category, e.g. "Applications". It plays
	// no part in matching.
	Context string
	// Scaled marks buckets listed under ScaledDirectories or with Scale > 1.
	Scaled bool
}

// ThemeIndex is the parsed descriptor of one theme.
type ThemeIndex struct {
	// Name is the display name from the descriptor, unused for matching.
	Name string
	// Comment is the descriptor's description line. Often empty in the wild
	// even though the format nominally requires it.
	Comment string
	// Inherits lists parent theme names in declared search order. Empty
	// means only the baseline fallback applies.
	Inherits []string
	// Directories holds the subdirectory buckets in declared order. Order
	// matters: it is the tie-breaker when several buckets are equally close.
	Directories []SubdirSpec
	// Hidden marks themes that should not appear in theme selection UIs.
	Hidden bool
	// Example names an icon that previews the theme.
	Example string
}

// Theme couples a parsed index with the on-disk folders it was discovered
// in. A theme may be spread across several base directories; every folder
// is probed, in base-directory priority order.
type Theme struct {
	// Name is the internal name, i.e. the theme's directory name.
	Name string
	// Folders are the theme's directories across all base dirs, highest
	// priority first.
	Folders []string
	// IndexPath is the index.theme file the index was parsed from.
	IndexPath string
	// Index is the parsed descriptor.
	Index *ThemeIndex
}

// ResolvedIcon is the result of a successful lookup.
type ResolvedIcon struct {
	// Path is the absolute path of the found file.
	Path string
	// Theme and SubdirPath identify where the file came from, for
	// diagnostics. Both are empty for unthemed (standalone) hits.
	Theme      string
	SubdirPath string
	// Size is the nominal pixel size of the bucket the file was found in,
	// or 0 for standalone hits.
	Size int
	// Type is the file format, derived from the extension.
	Type FileType
}
