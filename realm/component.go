// Package realm declares the interface surface of the terminal-UI component
// framework that component-derive generates code for.
//
// Only the contract lives here: the MockComponent interface and the value
// types its methods exchange. Drawing, layout and event dispatch belong to the
// framework itself.
package realm

// MockComponent is the capability set every component exposes to the
// application: it draws itself, holds attributes, reports its state and
// reacts to commands.
type MockComponent interface {
	// View renders the component into area of frame.
	View(frame Frame, area Rect)
	// Query returns the value of attr, if set.
	Query(attr Attribute) (AttrValue, bool)
	// Attr sets attr to value.
	Attr(attr Attribute, value AttrValue)
	// State reports the current component state.
	State() State
	// Perform executes cmd and reports what changed.
	Perform(cmd Cmd) CmdResult
}

// Frame is the drawing surface handed to View.
type Frame interface {
	// SetCell writes r at column x, row y.
	SetCell(x, y uint16, r rune)
	// Size reports the drawable area.
	Size() Rect
}

// Rect is a rectangular area of a Frame.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// Area returns the number of cells covered by r.
func (r Rect) Area() int {
	return int(r.Width) * int(r.Height)
}
