package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleJSON = `{
  "levels": [
    {
      "name": "Test",
      "gravity": 0.5,
      "jumpV": -9,
      "theme": { "bg": "#000", "blob": "not-a-color" },
      "start": { "x": 10, "y": 20 },
      "platforms": [
        { "x": 0, "y": 300, "w": 640, "h": 20 },
        { "x": 50, "y": 200, "w": 0, "h": 10 },
        { "x": 100, "y": 100, "w": 100, "h": 20, "goal": true }
      ],
      "obstaclePatterns": [
        { "startX": 100, "y": 0, "spacing": 50, "count": 3, "size": 20, "type": "falling" },
        { "startX": 0, "y": 0, "spacing": 10, "count": 0, "size": 20 }
      ]
    }
  ]
}`

const sampleYAML = `
levels:
  - name: Test
    gravity: 0.5
    jumpV: -9
    theme: { bg: "#000", blob: not-a-color }
    start: { x: 10, y: 20 }
    platforms:
      - { x: 0, y: 300, w: 640, h: 20 }
      - { x: 50, y: 200, w: 0, h: 10 }
      - { x: 100, y: 100, w: 100, h: 20, goal: true }
    obstaclePatterns:
      - { startX: 100, y: 0, spacing: 50, count: 3, size: 20, type: falling }
      - { startX: 0, y: 0, spacing: 10, count: 0, size: 20 }
`

func checkSample(t *testing.T, src *Source) {
	t.Helper()

	if src.Len() != 1 {
		t.Fatalf("expected 1 level, got %d", src.Len())
	}
	lvl := src.Levels[0]

	if lvl.Name != "Test" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "Test")
	}
	if lvl.Gravity != 0.5 || lvl.JumpVelocity != -9 {
		t.Errorf("physics = (%f, %f), expected (0.5, -9)", lvl.Gravity, lvl.JumpVelocity)
	}
	if lvl.Start != (Start{X: 10, Y: 20, R: DefaultStartR}) {
		t.Errorf("Start = %+v, expected radius default", lvl.Start)
	}
	if lvl.Theme.BG != "#000000" {
		t.Errorf("BG = %q, expected short hex expanded", lvl.Theme.BG)
	}
	if lvl.Theme.Blob != DefaultBlob {
		t.Errorf("Blob = %q, expected fallback for invalid color", lvl.Theme.Blob)
	}
	if lvl.Theme.Platform != DefaultPlatform {
		t.Errorf("Platform = %q, expected fallback for missing color", lvl.Theme.Platform)
	}
	if len(lvl.Platforms) != 2 {
		t.Fatalf("expected zero-width platform dropped, got %d platforms", len(lvl.Platforms))
	}
	if !lvl.Platforms[1].Goal {
		t.Error("goal flag should survive parsing")
	}
	if len(lvl.Patterns) != 1 {
		t.Fatalf("expected empty pattern dropped, got %d patterns", len(lvl.Patterns))
	}
	if len(src.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", src.Warnings)
	}
}

func TestParseJSON(t *testing.T) {
	records, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	checkSample(t, NewSource(records, "test"))
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	records, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	checkSample(t, NewSource(records, "test"))
}

func TestParseBareArray(t *testing.T) {
	records, err := ParseJSON([]byte(`[{"name": "A"}, {"name": "B"}]`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(records) != 2 || records[1].Name != "B" {
		t.Errorf("unexpected records: %+v", records)
	}

	yamlRecords, err := ParseYAML([]byte("- name: A\n- name: B\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(yamlRecords) != 2 || yamlRecords[0].Name != "A" {
		t.Errorf("unexpected yaml records: %+v", yamlRecords)
	}
}

func TestResolveDefaults(t *testing.T) {
	lvl := Resolve(Record{}, nil)

	if lvl.Name != DefaultName {
		t.Errorf("Name = %q, expected %q", lvl.Name, DefaultName)
	}
	if lvl.Gravity != DefaultGravity || lvl.JumpVelocity != DefaultJumpVelocity {
		t.Errorf("physics defaults wrong: %f, %f", lvl.Gravity, lvl.JumpVelocity)
	}
	if lvl.Start != (Start{X: 80, Y: 180, R: 26}) {
		t.Errorf("Start = %+v, expected {80 180 26}", lvl.Start)
	}
	if lvl.Theme != DefaultTheme() {
		t.Errorf("Theme = %+v, expected defaults", lvl.Theme)
	}
	if len(lvl.Platforms) != 0 {
		t.Error("empty record should have no platforms")
	}
}

func TestResolveExplicitZeroGravity(t *testing.T) {
	zero := 0.0
	lvl := Resolve(Record{Gravity: &zero}, nil)
	if lvl.Gravity != 0 {
		t.Errorf("explicit zero gravity should be kept, got %f", lvl.Gravity)
	}
}

func TestResolvePatternTypeDefault(t *testing.T) {
	lvl := Resolve(Record{
		ObstaclePatterns: []PatternSpec{{Count: 1, Size: 10}},
	}, nil)
	if lvl.Patterns[0].Type != DefaultObstacleType {
		t.Errorf("Type = %q, expected %q", lvl.Patterns[0].Type, DefaultObstacleType)
	}
}

func TestSourceLevelWraps(t *testing.T) {
	src := NewSource([]Record{{Name: "A"}, {Name: "B"}}, "test")

	if got := src.Level(2).Name; got != "A" {
		t.Errorf("Level(2) = %q, expected wrap to A", got)
	}
	if got := src.Level(-1).Name; got != "B" {
		t.Errorf("Level(-1) = %q, expected wrap to B", got)
	}

	empty := NewSource(nil, "test")
	if got := empty.Level(3).Name; got != DefaultName {
		t.Errorf("empty source Level() = %q, expected default level", got)
	}
}

func TestDefaultPack(t *testing.T) {
	src := Default()

	if src.Origin != EmbeddedOrigin {
		t.Errorf("Origin = %q, expected %q", src.Origin, EmbeddedOrigin)
	}
	if src.Len() < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %d", src.Len())
	}
	if len(src.Warnings) != 0 {
		t.Errorf("built-in pack should resolve cleanly, got %v", src.Warnings)
	}
	for _, lvl := range src.Levels {
		if len(lvl.Platforms) == 0 {
			t.Errorf("level %q has no platforms", lvl.Name)
		}
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "levels.json")
	yamlPath := filepath.Join(dir, "levels.yml")
	txtPath := filepath.Join(dir, "levels.txt")

	for path, data := range map[string]string{
		jsonPath: sampleJSON,
		yamlPath: sampleYAML,
		txtPath:  sampleJSON,
	} {
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	for _, path := range []string{jsonPath, yamlPath} {
		src, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", path, err)
		}
		if src.Origin != path {
			t.Errorf("Origin = %q, expected %q", src.Origin, path)
		}
		checkSample(t, src)
	}

	if _, err := Load(txtPath); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if SupportedExtension(txtPath) {
		t.Error(".txt should not be supported")
	}
}

func TestLoadOrDefault(t *testing.T) {
	src, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") failed: %v", err)
	}
	if src.Origin != EmbeddedOrigin {
		t.Errorf("empty path should load the embedded pack, got %q", src.Origin)
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"#FF4D4D", "#ff4d4d"},
		{"#fff", "#ffffff"},
		{"", "#123456"},
		{"red", "#123456"},
	}
	for _, tc := range tests {
		if got := NormalizeColor(tc.in, "#123456"); got != tc.expected {
			t.Errorf("NormalizeColor(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, expected %q", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}
