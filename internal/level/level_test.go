package level

import (
	"strings"
	"testing"

	"chosenoffset.com/umbra/internal/geom"
)

func TestDefaultLevel(t *testing.T) {
	lvl := Default()

	if lvl.Width != 800 || lvl.Height != 600 {
		t.Errorf("size = %gx%g, want 800x600", lvl.Width, lvl.Height)
	}
	if lvl.PlayerSpawn != geom.V(20, 500) {
		t.Errorf("player spawn = %v, want (20, 500)", lvl.PlayerSpawn)
	}
	if len(lvl.Lights) != 1 || lvl.Lights[0] != geom.V(400, 100) {
		t.Errorf("lights = %v, want one light at (400, 100)", lvl.Lights)
	}
	if len(lvl.Obstacles) != 4 {
		t.Errorf("got %d walls, want 4", len(lvl.Obstacles))
	}
	if len(lvl.Goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(lvl.Goals))
	}
	if g := lvl.Goals[0]; g != geom.NewRect(690, 540, 100, 50) {
		t.Errorf("goal = %v, want (690, 540, 100, 50)", g)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	lvl, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if lvl.Width != 800 || lvl.Height != 600 {
		t.Errorf("size = %gx%g, want 800x600", lvl.Width, lvl.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	valid := `
name: test
width: 800
height: 600
player: {x: 20, y: 500}
lights:
  - {x: 400, y: 100}
walls:
  - {from: {x: 300, y: 200}, to: {x: 400, y: 400}}
goals:
  - {x: 690, y: 540, w: 100, h: 50}
`
	if _, err := Parse([]byte(valid)); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}

	tests := []struct {
		name    string
		mangle  func(string) string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			mangle:  func(s string) string { return s + "\n\t: bad" },
			wantErr: "failed to parse",
		},
		{
			name:    "zero width",
			mangle:  func(s string) string { return strings.Replace(s, "width: 800", "width: 0", 1) },
			wantErr: "invalid level dimensions",
		},
		{
			name: "no lights",
			mangle: func(s string) string {
				return strings.Replace(s, "lights:\n  - {x: 400, y: 100}\n", "", 1)
			},
			wantErr: "at least one light",
		},
		{
			name:    "spawn out of bounds",
			mangle:  func(s string) string { return strings.Replace(s, "player: {x: 20, y: 500}", "player: {x: -5, y: 500}", 1) },
			wantErr: "outside level bounds",
		},
		{
			name:    "light out of bounds",
			mangle:  func(s string) string { return strings.Replace(s, "{x: 400, y: 100}", "{x: 400, y: 700}", 1) },
			wantErr: "outside level bounds",
		},
		{
			name:    "zero-length wall",
			mangle:  func(s string) string { return strings.Replace(s, "to: {x: 400, y: 400}", "to: {x: 300, y: 200}", 1) },
			wantErr: "zero length",
		},
		{
			name:    "non-integral wall",
			mangle:  func(s string) string { return strings.Replace(s, "to: {x: 400, y: 400}", "to: {x: 400.5, y: 400}", 1) },
			wantErr: "non-integral",
		},
		{
			name:    "zero-size goal",
			mangle:  func(s string) string { return strings.Replace(s, "w: 100, h: 50", "w: 0, h: 50", 1) },
			wantErr: "invalid size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mangle(valid)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
