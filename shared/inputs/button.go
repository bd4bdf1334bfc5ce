package inputs

// Button is a logical input signal. Primitives are the physical stick and
// attack buttons; macros stand for a fixed set of primitives pressed together.
type Button int

const (
	Left Button = iota
	Down
	Right
	Up
	Punch
	Kick
	Slash
	Heavy
	Dust
	MacroPK
	MacroPD
	MacroPKS
	MacroPKSH
	ButtonCount // Must be last - used for array sizing
)

// firstMacro marks where the macro range starts in the enumeration.
const firstMacro = MacroPK

var buttonNames = [ButtonCount]string{
	Left:      "LEFT",
	Down:      "DOWN",
	Right:     "RIGHT",
	Up:        "UP",
	Punch:     "PUNCH",
	Kick:      "KICK",
	Slash:     "SLASH",
	Heavy:     "HEAVY",
	Dust:      "DUST",
	MacroPK:   "MACRO_PK",
	MacroPD:   "MACRO_PD",
	MacroPKS:  "MACRO_PKS",
	MacroPKSH: "MACRO_PKSH",
}

// Valid reports whether b is a member of the enumeration.
func (b Button) Valid() bool {
	return b >= 0 && b < ButtonCount
}

// IsPrimitive reports whether b is a stick direction or attack button.
func (b Button) IsPrimitive() bool {
	return b >= 0 && b < firstMacro
}

// IsMacro reports whether b is a macro alias.
func (b Button) IsMacro() bool {
	return b >= firstMacro && b < ButtonCount
}

func (b Button) String() string {
	if !b.Valid() {
		return "UNKNOWN"
	}
	return buttonNames[b]
}

// AllButtons returns every Button in enumeration order.
func AllButtons() []Button {
	all := make([]Button, 0, ButtonCount)
	for b := Button(0); b < ButtonCount; b++ {
		all = append(all, b)
	}
	return all
}

// ButtonState is the held/not-held value of every Button on one frame.
// The array form keeps the mapping total and lets two states compare with ==.
type ButtonState [ButtonCount]bool

// StateOf returns a ButtonState with exactly the given buttons held.
func StateOf(buttons ...Button) ButtonState {
	var s ButtonState
	for _, b := range buttons {
		if b.Valid() {
			s[b] = true
		}
	}
	return s
}

// Pressed reports whether b is held. Out-of-range buttons are never held.
func (s ButtonState) Pressed(b Button) bool {
	return b.Valid() && s[b]
}

// Held returns the held buttons in enumeration order.
func (s ButtonState) Held() []Button {
	var held []Button
	for b := Button(0); b < ButtonCount; b++ {
		if s[b] {
			held = append(held, b)
		}
	}
	return held
}

// Neutral reports whether no button at all is held.
func (s ButtonState) Neutral() bool {
	return s == ButtonState{}
}
