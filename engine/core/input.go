package core

// Input accumulates platform events into a pollable snapshot.
type Input struct {
	buttons          [MouseButtonCount]bool
	mouseX, mouseY   float64
	scrollX, scrollY float64
	mods             Mod
	chars            []rune
}

func NewInput() *Input { return &Input{} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button >= 0 && e.Button < MouseButtonCount {
			in.buttons[e.Button] = e.Down
		}
		in.mods = e.Mods
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	case EventChar:
		in.chars = append(in.chars, e.Char)
	}
}

func (in *Input) IsButtonDown(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return in.buttons[b]
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) Mods() Mod                 { return in.mods }

// TakeScroll returns the wheel delta accumulated since the last call.
func (in *Input) TakeScroll() (float64, float64) {
	x, y := in.scrollX, in.scrollY
	in.scrollX, in.scrollY = 0, 0
	return x, y
}

// TakeChars returns the text typed since the last call.
func (in *Input) TakeChars() string {
	if len(in.chars) == 0 {
		return ""
	}
	s := string(in.chars)
	in.chars = in.chars[:0]
	return s
}

// EndFrame drops the per-frame accumulators nobody took.
func (in *Input) EndFrame() {
	in.scrollX, in.scrollY = 0, 0
	in.chars = in.chars[:0]
}
