package imagecrop

import "testing"

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.PositionX != 50 || s.PositionY != 50 || s.Scale != 100 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestZoomStepsAndClamps(t *testing.T) {
	e := NewEditor(DefaultState())

	e.ZoomIn()
	if e.State().Scale != 110 {
		t.Fatalf("zoom in should step by 10, got %v", e.State().Scale)
	}

	for i := 0; i < 20; i++ {
		e.ZoomIn()
	}
	if e.State().Scale != MaxScale {
		t.Fatalf("scale should clamp at %d, got %v", MaxScale, e.State().Scale)
	}

	for i := 0; i < 20; i++ {
		e.ZoomOut()
	}
	if e.State().Scale != MinScale {
		t.Fatalf("scale should clamp at %d, got %v", MinScale, e.State().Scale)
	}
}

func TestDragMovesAgainstPointer(t *testing.T) {
	e := NewEditor(DefaultState())
	e.ZoomIn()

	e.StartDrag()
	e.Drag(24, 0, 240, 320)
	e.EndDrag()

	s := e.State()
	if s.PositionX != 38 {
		t.Fatalf("unexpected x after drag: %v", s.PositionX)
	}
	if s.PositionY != 50 {
		t.Fatalf("vertical position should not move: %v", s.PositionY)
	}
	if s.Scale != 110 {
		t.Fatalf("drag should not touch scale: %v", s.Scale)
	}
}

func TestDragDeltasAreRelativeToDragStart(t *testing.T) {
	e := NewEditor(DefaultState())

	e.StartDrag()
	e.Drag(24, 0, 240, 320)
	e.Drag(48, 0, 240, 320)
	e.EndDrag()

	if e.State().PositionX != 26 {
		t.Fatalf("deltas should accumulate from the drag anchor: %v", e.State().PositionX)
	}
}

func TestDragClampsToBounds(t *testing.T) {
	e := NewEditor(DefaultState())

	e.StartDrag()
	e.Drag(-10000, 10000, 240, 320)
	e.EndDrag()

	s := e.State()
	if s.PositionX != 100 || s.PositionY != 0 {
		t.Fatalf("positions should clamp to [0,100]: %+v", s)
	}
}

func TestDragIgnoredWithoutStart(t *testing.T) {
	e := NewEditor(DefaultState())

	e.Drag(24, 24, 240, 320)
	if e.State() != DefaultState() {
		t.Fatalf("drag without start should be ignored: %+v", e.State())
	}
}

func TestVerticalSensitivity(t *testing.T) {
	e := NewEditor(DefaultState())

	e.StartDrag()
	e.Drag(0, 40, 240, 320)
	e.EndDrag()

	if e.State().PositionY != 40 {
		t.Fatalf("unexpected y after vertical drag: %v", e.State().PositionY)
	}
}

func TestReset(t *testing.T) {
	e := NewEditor(State{PositionX: 10, PositionY: 90, Scale: 180})

	e.Reset()
	if e.State() != DefaultState() {
		t.Fatalf("reset should restore defaults: %+v", e.State())
	}
}
