// Package scrollspy decides which page section is "active" for navigation
// highlighting, from the scroll position alone.
//
// The model follows browser intersection observers: each section is measured
// against an observation window inset from the viewport (top 20%, bottom 65%,
// leaving the 20%–35% band), which biases the active section toward whatever
// sits near the top of the screen. Among intersecting sections the highest
// intersection ratio wins; when nothing intersects the previous answer is
// kept so the highlight never flickers to empty.
package scrollspy

// Thresholds quantize ratio changes: a new observation only triggers
// re-selection when some section's ratio crosses one of these since the last
// observation, mirroring observer callback batching.
var Thresholds = []float64{0.20, 0.35, 0.50, 0.65}

// Observation window insets, as fractions of the viewport height.
const (
	WindowTopInset    = 0.20
	WindowBottomInset = 0.65
)

// Extent is a section's position on the page, in lines.
type Extent struct {
	Top    int
	Height int
}

// Sample is one per-section visibility measurement. Ephemeral; produced per
// observation and not retained.
type Sample struct {
	SectionID    string
	Ratio        float64
	Intersecting bool
}

// Tracker owns the active-section state for one configured section list.
type Tracker struct {
	ids     []string
	extents map[string]Extent
	active  string

	// Quantized ratio per section at the last observation, used to detect
	// threshold crossings.
	lastBucket map[string]int
}

// New resolves each id through resolve; ids that fail to resolve are
// silently skipped (they stay configured but produce no samples). The
// active section starts as the first configured id.
func New(ids []string, resolve func(id string) (Extent, bool)) *Tracker {
	t := &Tracker{}
	t.Reconfigure(ids, resolve)
	return t
}

// Reconfigure tears down the previous observation state and rebuilds it
// against the new list, so stale sections can never influence selection.
// The active id resets to the first of the new list.
func (t *Tracker) Reconfigure(ids []string, resolve func(id string) (Extent, bool)) {
	t.ids = append([]string(nil), ids...)
	t.extents = make(map[string]Extent, len(ids))
	t.lastBucket = make(map[string]int, len(ids))
	t.active = ""
	if len(ids) > 0 {
		t.active = ids[0]
	}
	for _, id := range ids {
		if ext, ok := resolve(id); ok && ext.Height > 0 {
			t.extents[id] = ext
		}
	}
}

// Refresh re-resolves the configured ids against new geometry (reflow,
// resize) without resetting the active state — the section list itself is
// unchanged, so this is not a reconfiguration.
func (t *Tracker) Refresh(resolve func(id string) (Extent, bool)) {
	t.extents = make(map[string]Extent, len(t.ids))
	for _, id := range t.ids {
		if ext, ok := resolve(id); ok && ext.Height > 0 {
			t.extents[id] = ext
		}
	}
}

// Active returns the current winning section id.
func (t *Tracker) Active() string { return t.active }

// Observe measures every resolved section against the viewport
// [scrollTop, scrollTop+viewHeight) and applies the selection rule. It
// returns the (possibly unchanged) active id.
func (t *Tracker) Observe(scrollTop, viewHeight int) string {
	if viewHeight <= 0 {
		return t.active
	}
	winTop := float64(scrollTop) + WindowTopInset*float64(viewHeight)
	winBot := float64(scrollTop) + float64(viewHeight) - WindowBottomInset*float64(viewHeight)
	if winBot <= winTop {
		return t.active
	}

	samples := make([]Sample, 0, len(t.ids))
	crossed := false
	for _, id := range t.ids {
		ext, ok := t.extents[id]
		if !ok {
			continue
		}
		ratio := overlapRatio(ext, winTop, winBot)
		samples = append(samples, Sample{
			SectionID:    id,
			Ratio:        ratio,
			Intersecting: ratio > 0,
		})
		b := bucket(ratio)
		if prev, seen := t.lastBucket[id]; !seen || prev != b {
			crossed = true
		}
		t.lastBucket[id] = b
	}
	if !crossed {
		return t.active
	}
	return t.Apply(samples)
}

// Apply runs the selection rule over one observation batch: among
// intersecting samples the highest ratio wins; equal ratios resolve to the
// earlier sample (configured/document order); an empty intersecting set
// leaves the active section unchanged.
func (t *Tracker) Apply(samples []Sample) string {
	best := -1
	for i, s := range samples {
		if !s.Intersecting {
			continue
		}
		if best < 0 || s.Ratio > samples[best].Ratio {
			best = i
		}
	}
	if best >= 0 {
		t.active = samples[best].SectionID
	}
	return t.active
}

func overlapRatio(ext Extent, winTop, winBot float64) float64 {
	top := float64(ext.Top)
	bot := float64(ext.Top + ext.Height)
	lo := top
	if winTop > lo {
		lo = winTop
	}
	hi := bot
	if winBot < hi {
		hi = winBot
	}
	if hi <= lo {
		return 0
	}
	return (hi - lo) / float64(ext.Height)
}

func bucket(ratio float64) int {
	b := 0
	for i, th := range Thresholds {
		if ratio >= th {
			b = i + 1
		}
	}
	if ratio > 0 && b == 0 {
		// Visible but below the first threshold still differs from hidden.
		return -1
	}
	return b
}
