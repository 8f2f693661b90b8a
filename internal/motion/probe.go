// Package motion exposes the user's reduced-motion preference as a boolean
// signal with optional live updates.
//
// Resolution order mirrors the rest of the preference handling: the
// NORTHLIGHT_REDUCED_MOTION env var wins, then the prefs file under the
// user config dir. When the prefs file can't be watched the probe degrades
// to the one-time read; callers treat that as a static preference, not an
// error condition.
package motion

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const envVar = "NORTHLIGHT_REDUCED_MOTION"

type prefs struct {
	ReducedMotion bool `yaml:"reduced_motion"`
}

// PrefsPath returns the preferences file location. It exists whether or not
// the file does.
func PrefsPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "northlight", "prefs.yaml")
	}
	return ""
}

type Probe struct {
	mu      sync.Mutex
	reduced bool

	path    string
	log     *zap.Logger
	watcher *fsnotify.Watcher
	changes chan bool
	done    chan struct{}
}

// NewProbe reads the preference synchronously. Pass an empty path to use the
// default prefs location.
func NewProbe(path string, log *zap.Logger) *Probe {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		path = PrefsPath()
	}
	p := &Probe{path: path, log: log}
	p.reduced = readPreference(path)
	return p
}

// Reduced reports the current preference.
func (p *Probe) Reduced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reduced
}

// Changes returns a channel that delivers the new value whenever the prefs
// file changes. Returns nil when watching is unavailable (env override set,
// no config dir, or fsnotify failed) — the static read still stands.
func (p *Probe) Changes() <-chan bool {
	if _, ok := os.LookupEnv(envVar); ok {
		// Env overrides the file; nothing to watch.
		return nil
	}
	if p.path == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.changes != nil {
		return p.changes
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		p.log.Warn("motion: watcher unavailable, preference is static", zap.Error(err))
		return nil
	}
	// Watch the directory: editors replace files on save, which drops a
	// watch on the file itself.
	if err := w.Add(filepath.Dir(p.path)); err != nil {
		p.log.Warn("motion: cannot watch prefs dir, preference is static", zap.Error(err))
		_ = w.Close()
		return nil
	}

	p.watcher = w
	p.changes = make(chan bool, 1)
	p.done = make(chan struct{})
	go p.watch()
	return p.changes
}

func (p *Probe) watch() {
	for {
		select {
		case <-p.done:
			return
		case ev, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(p.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			v := readPreference(p.path)
			p.mu.Lock()
			changed := v != p.reduced
			p.reduced = v
			ch := p.changes
			p.mu.Unlock()
			if changed {
				select {
				case ch <- v:
				default:
					// A pending notification already carries the
					// re-read; drop rather than block the watcher.
				}
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.log.Warn("motion: watch error", zap.Error(err))
		}
	}
}

// Close releases the watcher and its goroutine. Safe to call when watching
// never started.
func (p *Probe) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.watcher == nil {
		return
	}
	close(p.done)
	_ = p.watcher.Close()
	p.watcher = nil
}

func readPreference(path string) bool {
	if v, ok := os.LookupEnv(envVar); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return false
	}
	if path == "" {
		return false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var pr prefs
	if err := yaml.Unmarshal(raw, &pr); err != nil {
		return false
	}
	return pr.ReducedMotion
}
