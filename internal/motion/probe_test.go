package motion

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadPreferenceEnvOverride(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"garbage", false},
	}
	for _, tt := range tests {
		t.Setenv(envVar, tt.env)
		if got := readPreference(""); got != tt.want {
			t.Fatalf("readPreference with %s=%q = %v, want %v", envVar, tt.env, got, tt.want)
		}
	}
}

func TestNewProbeReadsPrefsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	if err := os.WriteFile(path, []byte("reduced_motion: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProbe(path, nil)
	defer p.Close()
	if !p.Reduced() {
		t.Fatalf("expected reduced=true from prefs file")
	}
}

func TestNewProbeMissingFileDefaultsOff(t *testing.T) {
	p := NewProbe(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	defer p.Close()
	if p.Reduced() {
		t.Fatalf("expected reduced=false when no prefs file exists")
	}
}

func TestChangesDeliversLiveUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	if err := os.WriteFile(path, []byte("reduced_motion: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProbe(path, nil)
	defer p.Close()

	ch := p.Changes()
	if ch == nil {
		t.Skip("fsnotify unavailable in this environment")
	}

	if err := os.WriteFile(path, []byte("reduced_motion: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-ch:
		if !v {
			t.Fatalf("expected change notification with reduced=true, got %v", v)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no change notification within timeout")
	}
	if !p.Reduced() {
		t.Fatalf("probe should reflect the new value after a change")
	}
}

func TestChangesNilWhenEnvOverrides(t *testing.T) {
	t.Setenv(envVar, "true")
	p := NewProbe(filepath.Join(t.TempDir(), "prefs.yaml"), nil)
	defer p.Close()
	if p.Changes() != nil {
		t.Fatalf("env override should disable file watching")
	}
}
