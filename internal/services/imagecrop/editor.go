package imagecrop

const (
	MinScale     = 80
	MaxScale     = 200
	DefaultScale = 100
	ScaleStep    = 10

	DefaultPosition = 50

	// Drag sensitivity per axis: a drag across the full preview moves
	// the focal point by this many position units.
	horizontalFactor = 120
	verticalFactor   = 80
)

// State is the persisted crop for a profile image: the focal point as
// percentages and the zoom scale.
type State struct {
	PositionX float64 `json:"image_position_x"`
	PositionY float64 `json:"image_position_y"`
	Scale     float64 `json:"image_scale"`
}

func DefaultState() State {
	return State{
		PositionX: DefaultPosition,
		PositionY: DefaultPosition,
		Scale:     DefaultScale,
	}
}

// Editor adjusts a crop through drag and zoom gestures. Dragging moves
// the focal point opposite to the pointer, like panning a photo.
type Editor struct {
	state    State
	dragging bool
	anchorX  float64
	anchorY  float64
}

func NewEditor(state State) *Editor {
	return &Editor{state: clampState(state)}
}

func (e *Editor) State() State {
	return e.state
}

func (e *Editor) StartDrag() {
	e.dragging = true
	e.anchorX = e.state.PositionX
	e.anchorY = e.state.PositionY
}

// Drag applies the pointer delta since StartDrag, in pixels, against the
// preview dimensions. Ignored when no drag is active or the preview has
// no size.
func (e *Editor) Drag(deltaX, deltaY, previewWidth, previewHeight float64) {
	if !e.dragging || previewWidth <= 0 || previewHeight <= 0 {
		return
	}

	e.state.PositionX = clampPosition(e.anchorX - deltaX/previewWidth*horizontalFactor)
	e.state.PositionY = clampPosition(e.anchorY - deltaY/previewHeight*verticalFactor)
}

func (e *Editor) EndDrag() {
	e.dragging = false
}

func (e *Editor) ZoomIn() {
	e.state.Scale = clampScale(e.state.Scale + ScaleStep)
}

func (e *Editor) ZoomOut() {
	e.state.Scale = clampScale(e.state.Scale - ScaleStep)
}

func (e *Editor) Reset() {
	e.state = DefaultState()
	e.dragging = false
}

func clampState(s State) State {
	s.PositionX = clampPosition(s.PositionX)
	s.PositionY = clampPosition(s.PositionY)
	if s.Scale == 0 {
		s.Scale = DefaultScale
	}
	s.Scale = clampScale(s.Scale)
	return s
}

func clampPosition(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampScale(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}
