package realm

// Attribute names a component property.
type Attribute string

const (
	AttrText       Attribute = "text"
	AttrTitle      Attribute = "title"
	AttrFocus      Attribute = "focus"
	AttrDisabled   Attribute = "disabled"
	AttrContent    Attribute = "value"
	AttrForeground Attribute = "foreground"
	AttrBackground Attribute = "background"
)

// AttrValue is the value held by an Attribute.
type AttrValue any

// StateKind tells which payload a State carries.
type StateKind int

const (
	StateNone StateKind = iota
	StateOne
	StateVec
	StateMap
)

// State is the component state reported to the application.
type State struct {
	Kind  StateKind
	Value any
}

// NoState is the state of a component that has none.
func NoState() State {
	return State{Kind: StateNone}
}

// CmdKind identifies a component command.
type CmdKind int

const (
	CmdNone CmdKind = iota
	CmdMove
	CmdScroll
	CmdType
	CmdDelete
	CmdSubmit
	CmdChange
	CmdCustom
)

// Cmd is a command sent to a component.
type Cmd struct {
	Kind    CmdKind
	Payload any
}

// CmdResult is what a component reports after Perform.
type CmdResult struct {
	Kind  CmdKind
	State State
}

// NoChange is the result of a command that changed nothing.
func NoChange() CmdResult {
	return CmdResult{Kind: CmdNone}
}
