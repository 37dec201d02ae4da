package icontheme

import "testing"

func TestDirectoryMatchesFixed(t *testing.T) {
	sub := &SubdirSpec{Path: "32x32/apps", Size: 32, MinSize: 32, MaxSize: 32, Threshold: 2, Scale: 1, Type: DirFixed}

	if !DirectoryMatches(sub, 32, 1) {
		t.Error("Fixed dir should match its exact size")
	}
	if DirectoryMatches(sub, 33, 1) {
		t.Error("Fixed dir should not match size 33")
	}
	if DirectoryMatches(sub, 32, 2) {
		t.Error("Fixed dir should not match a different scale")
	}
}

func TestDirectoryMatchesScalable(t *testing.T) {
	sub := &SubdirSpec{Path: "scalable/apps", Size: 48, MinSize: 16, MaxSize: 256, Threshold: 2, Scale: 1, Type: DirScalable}

	for _, size := range []int{16, 48, 256} {
		if !DirectoryMatches(sub, size, 1) {
			t.Errorf("Scalable dir should match size %d", size)
		}
	}
	if DirectoryMatches(sub, 15, 1) {
		t.Error("Scalable dir should not match below MinSize")
	}
	if DirectoryMatches(sub, 257, 1) {
		t.Error("Scalable dir should not match above MaxSize")
	}
	if DirectoryMatches(sub, 48, 2) {
		t.Error("Scalable dir should not match a different scale")
	}
}

func TestDirectoryMatchesThreshold(t *testing.T) {
	sub := &SubdirSpec{Path: "24x24/apps", Size: 24, MinSize: 24, MaxSize: 24, Threshold: 2, Scale: 1, Type: DirThreshold}

	for _, size := range []int{22, 23, 24, 25, 26} {
		if !DirectoryMatches(sub, size, 1) {
			t.Errorf("Threshold dir should match size %d", size)
		}
	}
	if DirectoryMatches(sub, 21, 1) {
		t.Error("Threshold dir should not match below the band")
	}
	if DirectoryMatches(sub, 27, 1) {
		t.Error("Threshold dir should not match above the band")
	}
}

func TestSubdirDistance(t *testing.T) {
	fixed := &SubdirSpec{Size: 32, MinSize: 32, MaxSize: 32, Threshold: 2, Scale: 1, Type: DirFixed}
	if got := SubdirDistance(fixed, 48, 1); got != 16 {
		t.Errorf("fixed distance = %d, want 16", got)
	}
	if got := SubdirDistance(fixed, 32, 1); got != 0 {
		t.Errorf("fixed exact distance = %d, want 0", got)
	}

	// Scale participates: a 32@2 dir serves 64 effective pixels.
	scaled := &SubdirSpec{Size: 32, MinSize: 32, MaxSize: 32, Threshold: 2, Scale: 2, Type: DirFixed}
	if got := SubdirDistance(scaled, 64, 1); got != 0 {
		t.Errorf("scaled fixed distance = %d, want 0", got)
	}

	threshold := &SubdirSpec{Size: 48, MinSize: 48, MaxSize: 48, Threshold: 2, Scale: 1, Type: DirThreshold}
	if got := SubdirDistance(threshold, 47, 1); got != 0 {
		t.Errorf("within-band distance = %d, want 0", got)
	}
	if got := SubdirDistance(threshold, 32, 1); got != 16 {
		t.Errorf("below-band distance = %d, want 16 (measured to MinSize)", got)
	}
	if got := SubdirDistance(threshold, 64, 1); got != 16 {
		t.Errorf("above-band distance = %d, want 16 (measured to MaxSize)", got)
	}
}

func TestBestSubdirExactMatchWins(t *testing.T) {
	index := &ThemeIndex{Directories: []SubdirSpec{
		{Path: "16x16/apps", Size: 16, MinSize: 16, MaxSize: 16, Threshold: 2, Scale: 1, Type: DirThreshold},
		{Path: "32x32/apps", Size: 32, MinSize: 32, MaxSize: 32, Threshold: 2, Scale: 1, Type: DirFixed},
	}}

	best := BestSubdir(index, 32, 1)
	if best == nil || best.Path != "32x32/apps" {
		t.Fatalf("BestSubdir = %v, want the exact 32x32/apps match", best)
	}
}

func TestBestSubdirClosestTieBreak(t *testing.T) {
	// Neither bucket matches a request for 32; both are 16 scaled pixels
	// away. The earlier declared bucket must win.
	index := &ThemeIndex{Directories: []SubdirSpec{
		{Path: "16x16/apps", Size: 16, MinSize: 16, MaxSize: 16, Threshold: 2, Scale: 1, Type: DirThreshold},
		{Path: "48x48/apps", Size: 48, MinSize: 48, MaxSize: 48, Threshold: 2, Scale: 1, Type: DirThreshold},
	}}

	best := BestSubdir(index, 32, 1)
	if best == nil || best.Path != "16x16/apps" {
		t.Fatalf("BestSubdir = %v, want earlier-declared 16x16/apps on tie", best)
	}

	// Declared the other way around, the tie resolves the other way.
	reversed := &ThemeIndex{Directories: []SubdirSpec{
		index.Directories[1],
		index.Directories[0],
	}}
	best = BestSubdir(reversed, 32, 1)
	if best == nil || best.Path != "48x48/apps" {
		t.Fatalf("BestSubdir = %v, want earlier-declared 48x48/apps on tie", best)
	}
}

func TestBestSubdirEmptyIndex(t *testing.T) {
	if best := BestSubdir(&ThemeIndex{}, 32, 1); best != nil {
		t.Fatalf("BestSubdir on empty index = %v, want nil", best)
	}
}
