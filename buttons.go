package manchester

// Button is a single flag of the merged controller state.
type Button uint8

// Button definitions. Both scanners report in this layout so their results
// can be merged with a bitwise OR.
//
//	bit      0     1     2    3     4   5    6    7
//	Genesis  B     C     A    Start Up  Down Left Right
//	NES      A     B     Sel  Start Up  Down Left Right
//	SNES     B     Y     Sel  Start Up  Down Left Right
const (
	TriggerA Button = 1 << 0
	TriggerB Button = 1 << 1
	Select   Button = 1 << 2
	Start    Button = 1 << 3
	Up       Button = 1 << 4
	Down     Button = 1 << 5
	Left     Button = 1 << 6
	Right    Button = 1 << 7
)

var buttonNames = [8]string{"A", "B", "Sel", "St", "Up", "Dw", "Lf", "Rg"}

// State is the set of buttons and directions held during one scan.
// A set bit means pressed.
type State uint8

// IsDown returns true if the button is pressed.
func (s State) IsDown(b Button) bool {
	return uint8(s)&uint8(b) != 0
}

// With returns s with b pressed.
func (s State) With(b Button) State {
	return s | State(b)
}

// Merge combines the states of two controllers. A button is pressed if it
// is pressed on either one.
func Merge(a, b State) State {
	return a | b
}

// String lists the pressed buttons, e.g. "A Up Lf", or "-" when idle.
func (s State) String() string {
	if s == 0 {
		return "-"
	}
	var buf []byte
	for i, name := range buttonNames {
		if s&(1<<i) == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, name...)
	}
	return string(buf)
}
