package sim

// DrawMode selects how a cell is painted within its footprint.
type DrawMode int

const (
	// DrawInset paints a square inside the border.
	DrawInset DrawMode = iota
	// DrawFill paints the whole footprint, hiding the border.
	DrawFill
	// DrawCircle paints a circle centred in the cell.
	DrawCircle

	drawModeCount
)

func (m DrawMode) String() string {
	switch m {
	case DrawInset:
		return "inset"
	case DrawFill:
		return "fill"
	case DrawCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Next returns the following mode, wrapping at either end.
func (m DrawMode) Next(reverse bool) DrawMode {
	if reverse {
		return (m + drawModeCount - 1) % drawModeCount
	}
	return (m + 1) % drawModeCount
}

// View is presentation state owned by the controller. Every change that
// alters how existing cells look triggers a full redraw.
type View struct {
	Mode    DrawMode
	Swapped bool
	HUD     bool
}
