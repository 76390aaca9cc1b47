package discovery

import (
	"testing"
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
)

func newZoomGrouperAt(t *testing.T, zoom float64) (*ZoomGrouper, *time.Time) {
	t.Helper()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewZoomGrouper(zoom)
	g.now = func() time.Time { return current }
	return g, &current
}

func TestModeForZoomThreshold(t *testing.T) {
	if ModeForZoom(3.4) != enums.GroupByCountry {
		t.Fatalf("zoom below threshold should group by country")
	}
	if ModeForZoom(3.5) != enums.GroupByCity {
		t.Fatalf("zoom at threshold should group by city")
	}
	if ModeForZoom(8.0) != enums.GroupByCity {
		t.Fatalf("high zoom should group by city")
	}
}

func TestZoomInSwapsAfterDelayWithAnimation(t *testing.T) {
	g, now := newZoomGrouperAt(t, 2.0)

	g.SetZoom(5.0)
	if g.Mode() != enums.GroupByCountry {
		t.Fatalf("mode should not change before the swap delay")
	}

	*now = now.Add(50 * time.Millisecond)
	if g.Mode() != enums.GroupByCity {
		t.Fatalf("mode should swap to city after the delay")
	}
	if !g.Animating() {
		t.Fatalf("zooming in should animate the spread")
	}

	*now = now.Add(600 * time.Millisecond)
	if g.Animating() {
		t.Fatalf("animation should finish after its duration")
	}
}

func TestZoomOutSwapsImmediately(t *testing.T) {
	g, _ := newZoomGrouperAt(t, 5.0)

	g.SetZoom(2.0)

	if g.Mode() != enums.GroupByCountry {
		t.Fatalf("zooming out should swap to country at once")
	}
	if g.Animating() {
		t.Fatalf("zooming out should not animate")
	}
}

func TestCrossingIgnoredWhileSwapInFlight(t *testing.T) {
	g, now := newZoomGrouperAt(t, 2.0)

	g.SetZoom(5.0)
	*now = now.Add(10 * time.Millisecond)
	g.SetZoom(2.0)

	*now = now.Add(40 * time.Millisecond)
	if g.Mode() != enums.GroupByCity {
		t.Fatalf("in-flight swap should complete despite the second crossing")
	}
}

func TestSameSideZoomDoesNotSchedule(t *testing.T) {
	g, now := newZoomGrouperAt(t, 2.0)

	g.SetZoom(3.0)
	*now = now.Add(time.Second)
	if g.Mode() != enums.GroupByCountry {
		t.Fatalf("zoom changes on the same side of the threshold should not swap modes")
	}
}
