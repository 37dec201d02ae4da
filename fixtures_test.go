package icontheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// writeTheme creates <baseDir>/<name>/index.theme with the given descriptor.
func writeTheme(t *testing.T, baseDir, name, descriptor string) {
	t.Helper()
	dir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir theme %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFileName), []byte(descriptor), 0o644); err != nil {
		t.Fatalf("write index.theme for %s: %v", name, err)
	}
}

// touch creates an empty file, making parent directories as needed.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

// simpleTheme returns a descriptor with Fixed buckets at the given sizes.
func simpleTheme(name, inherits string, sizes ...string) string {
	descriptor := "[Icon Theme]\nName=" + name + "\n"
	if inherits != "" {
		descriptor += "Inherits=" + inherits + "\n"
	}
	dirs := ""
	sections := ""
	for i, size := range sizes {
		if i > 0 {
			dirs += ","
		}
		dirs += size + "x" + size + "/apps"
		sections += "\n[" + size + "x" + size + "/apps]\nSize=" + size + "\nType=Fixed\n"
	}
	return descriptor + "Directories=" + dirs + "\n" + sections
}

func testOptions(baseDirs ...string) Options {
	nop := zerolog.Nop()
	return Options{BaseDirs: baseDirs, Logger: &nop}
}
