package icontheme

import "testing"

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	if opts.DefaultTheme != "hicolor" {
		t.Errorf("DefaultTheme = %q, want hicolor", opts.DefaultTheme)
	}
	if opts.BaselineTheme != "hicolor" {
		t.Errorf("BaselineTheme = %q, want hicolor", opts.BaselineTheme)
	}
	if len(opts.Extensions) != 3 || opts.Extensions[0] != "svg" {
		t.Errorf("Extensions = %v, want [svg png xpm]", opts.Extensions)
	}
	if len(opts.BaseDirs) == 0 {
		t.Error("BaseDirs should default to the platform list")
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a no-op logger")
	}
}

func TestOptionsKeepExplicitValues(t *testing.T) {
	opts := Options{
		DefaultTheme: "breeze",
		Extensions:   []string{"png"},
		BaseDirs:     []string{"/opt/icons"},
	}.withDefaults()

	if opts.DefaultTheme != "breeze" {
		t.Errorf("DefaultTheme = %q, want breeze", opts.DefaultTheme)
	}
	if len(opts.Extensions) != 1 || opts.Extensions[0] != "png" {
		t.Errorf("Extensions = %v, want [png]", opts.Extensions)
	}
	if len(opts.BaseDirs) != 1 || opts.BaseDirs[0] != "/opt/icons" {
		t.Errorf("BaseDirs = %v, want [/opt/icons]", opts.BaseDirs)
	}
}

func TestDefaultBaseDirs(t *testing.T) {
	dirs := DefaultBaseDirs()
	if len(dirs) == 0 {
		t.Fatal("DefaultBaseDirs should not be empty")
	}
	if dirs[len(dirs)-1] != "/usr/share/pixmaps" {
		t.Errorf("last dir = %q, want /usr/share/pixmaps", dirs[len(dirs)-1])
	}
}
