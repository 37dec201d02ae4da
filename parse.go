package icontheme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// IndexFileName is the descriptor file expected at the root of every theme
// folder.
const IndexFileName = "index.theme"

const themeGroup = "Icon Theme"

// LoadThemeIndex reads and parses the index.theme descriptor at path.
// A missing file maps to ErrNoThemeIndex so discovery can tell "not a
// theme" apart from "broken theme".
func LoadThemeIndex(path string) (*ThemeIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", path, ErrNoThemeIndex)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	index, err := ParseThemeIndex(data)
	if err != nil {
		var malformed *MalformedDescriptorError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return index, nil
}

// ParseThemeIndex parses descriptor bytes into a ThemeIndex.
//
// The format is the freedesktop grouped key/value dialect: group headers in
// brackets, Key=Value lines, #-prefixed comments. Unknown keys are ignored
// for forward compatibility. Only groups named by the root Directories or
// ScaledDirectories lists become subdirectory buckets; stray groups are
// ignored like unknown keys.
func ParseThemeIndex(data []byte) (*ThemeIndex, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, data)
	if err != nil {
		return nil, &MalformedDescriptorError{Group: themeGroup, Message: "unparseable descriptor", Err: err}
	}

	root, err := file.GetSection(themeGroup)
	if err != nil {
		return nil, &MalformedDescriptorError{Group: themeGroup, Message: "missing [Icon Theme] group"}
	}

	if !root.HasKey("Name") {
		return nil, &MalformedDescriptorError{Group: themeGroup, Message: "missing required key Name"}
	}
	if !root.HasKey("Directories") {
		return nil, &MalformedDescriptorError{Group: themeGroup, Message: "missing required key Directories"}
	}

	index := &ThemeIndex{
		Name:     root.Key("Name").String(),
		Comment:  root.Key("Comment").String(),
		Inherits: splitList(root.Key("Inherits").String()),
		Example:  root.Key("Example").String(),
	}

	if root.HasKey("Hidden") {
		hidden, err := root.Key("Hidden").Bool()
		if err != nil {
			return nil, &MalformedDescriptorError{Group: themeGroup, Message: "invalid Hidden value", Err: err}
		}
		index.Hidden = hidden
	}

	declared := listSet(root.Key("Directories").String())
	scaled := listSet(root.Key("ScaledDirectories").String())

	// Descriptor order decides tie-breaking later, so iterate the file's
	// sections in order rather than the declared lists.
	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection || name == themeGroup {
			continue
		}
		_, isDir := declared[name]
		_, isScaled := scaled[name]
		if !isDir && !isScaled {
			continue
		}

		sub, err := parseSubdir(section, isScaled)
		if err != nil {
			return nil, err
		}
		index.Directories = append(index.Directories, *sub)
	}

	return index, nil
}

func parseSubdir(section *ini.Section, scaledList bool) (*SubdirSpec, error) {
	group := section.Name()

	if !section.HasKey("Size") {
		return nil, &MalformedDescriptorError{Group: group, Message: "missing required key Size"}
	}
	size, err := section.Key("Size").Int()
	if err != nil {
		return nil, &MalformedDescriptorError{Group: group, Message: "invalid Size value", Err: err}
	}
	if size <= 0 {
		return nil, &MalformedDescriptorError{Group: group, Message: fmt.Sprintf("Size must be positive, got %d", size)}
	}

	sub := &SubdirSpec{
		Path:      group,
		Size:      size,
		MinSize:   size,
		MaxSize:   size,
		Threshold: 2,
		Scale:     1,
		Type:      DirThreshold,
		Context:   section.Key("Context").String(),
	}

	if section.HasKey("Type") {
		dirType, err := parseDirType(section.Key("Type").String())
		if err != nil {
			return nil, &MalformedDescriptorError{Group: group, Message: "invalid Type value", Err: err}
		}
		sub.Type = dirType
	}
	if section.HasKey("Scale") {
		scale, err := section.Key("Scale").Int()
		if err != nil {
			return nil, &MalformedDescriptorError{Group: group, Message: "invalid Scale value", Err: err}
		}
		if scale < 1 {
			return nil, &MalformedDescriptorError{Group: group, Message: fmt.Sprintf("Scale must be at least 1, got %d", scale)}
		}
		sub.Scale = scale
	}
	if section.HasKey("MinSize") {
		minSize, err := section.Key("MinSize").Int()
		if err != nil {
			return nil, &MalformedDescriptorError{Group: group, Message: "invalid MinSize value", Err: err}
		}
		sub.MinSize = minSize
	}
	if section.HasKey("MaxSize") {
		maxSize, err := section.Key("MaxSize").Int()
		if err != nil {
			return nil, &MalformedDescriptorError{Group: group, Message: "invalid MaxSize value", Err: err}
		}
		sub.MaxSize = maxSize
	}
	if sub.MinSize > sub.Size || sub.Size > sub.MaxSize {
		return nil, &MalformedDescriptorError{Group: group, Message: fmt.Sprintf("Size %d outside [MinSize, MaxSize] = [%d, %d]", sub.Size, sub.MinSize, sub.MaxSize)}
	}
	if section.HasKey("Threshold") {
		threshold, err := section.Key("Threshold").Int()
		if err != nil {
			return nil, &MalformedDescriptorError{Group: group, Message: "invalid Threshold value", Err: err}
		}
		sub.Threshold = threshold
	}

	sub.Scaled = scaledList || sub.Scale != 1
	return sub, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		list = append(list, part)
	}
	return list
}

func listSet(value string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range splitList(value) {
		set[item] = struct{}{}
	}
	return set
}
