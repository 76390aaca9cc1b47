package discovery

import (
	"sync"
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
)

const (
	// CityZoomThreshold is the map zoom level at which markers switch
	// from country groups to city groups.
	CityZoomThreshold = 3.5

	// swapDelay debounces rapid zoom-in jitter around the threshold.
	swapDelay = 50 * time.Millisecond

	// animationDuration covers the marker spread animation when zooming
	// in from country to city view.
	animationDuration = 600 * time.Millisecond
)

// ZoomGrouper tracks which grouping mode the map is in as the zoom level
// crosses the threshold. Zooming in schedules the swap after a short
// delay and animates the spread; zooming out swaps immediately. A new
// crossing while a swap is in flight is ignored.
type ZoomGrouper struct {
	mu             sync.Mutex
	mode           enums.GroupingMode
	pendingMode    enums.GroupingMode
	pendingAt      time.Time
	hasPending     bool
	animatingUntil time.Time
	now            func() time.Time
}

func NewZoomGrouper(initialZoom float64) *ZoomGrouper {
	return &ZoomGrouper{
		mode: ModeForZoom(initialZoom),
		now:  time.Now,
	}
}

// ModeForZoom is the stateless mapping from zoom level to grouping mode.
func ModeForZoom(zoom float64) enums.GroupingMode {
	if zoom >= CityZoomThreshold {
		return enums.GroupByCity
	}
	return enums.GroupByCountry
}

// SetZoom reports the current zoom level. Crossing the threshold upward
// schedules a delayed swap; crossing downward takes effect at once.
func (g *ZoomGrouper) SetZoom(zoom float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advance(g.now())

	target := ModeForZoom(zoom)
	if g.hasPending {
		return
	}
	if target == g.mode {
		return
	}

	if target == enums.GroupByCountry {
		g.mode = target
		g.animatingUntil = time.Time{}
		return
	}

	g.pendingMode = target
	g.pendingAt = g.now().Add(swapDelay)
	g.hasPending = true
}

// Mode returns the grouping mode in effect right now.
func (g *ZoomGrouper) Mode() enums.GroupingMode {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advance(g.now())
	return g.mode
}

// Animating reports whether the country-to-city spread animation is
// still running.
func (g *ZoomGrouper) Animating() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	g.advance(now)
	return now.Before(g.animatingUntil)
}

func (g *ZoomGrouper) advance(now time.Time) {
	if !g.hasPending || now.Before(g.pendingAt) {
		return
	}

	g.mode = g.pendingMode
	g.hasPending = false

	// Only the country-to-city swap goes pending, and it spreads the
	// markers with an animation.
	g.animatingUntil = g.pendingAt.Add(animationDuration)
}
