package carousel

// Navigator is the command surface an Input drives.
type Navigator interface {
	Next()
	Previous()
	GoTo(index int) error
	Len() int
}

// DefaultSwipeThreshold is the minimum horizontal travel of a drag that
// counts as a swipe.
const DefaultSwipeThreshold = 50

// Input translates raw keys, pointer drags and wheel motion into navigation
// commands. The only state it keeps is the position of an unfinished drag.
type Input struct {
	nav        Navigator
	threshold  int
	onNavigate func()

	dragging     bool
	downX, downY int
}

// NewInput returns an adapter for nav. A threshold <= 0 selects
// DefaultSwipeThreshold.
func NewInput(nav Navigator, threshold int) *Input {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Input{nav: nav, threshold: threshold}
}

// OnNavigate registers a hook run before every user-initiated command, for
// example to stop autoplay.
func (in *Input) OnNavigate(fn func()) {
	in.onNavigate = fn
}

// Key handles a key name. It reports whether the key was bound and any error
// from a direct jump.
func (in *Input) Key(key string) (bool, error) {
	switch key {
	case "left", "ArrowLeft", "h":
		in.fire()
		in.nav.Previous()
	case "right", "ArrowRight", "l", " ", "space":
		in.fire()
		in.nav.Next()
	case "home", "Home":
		in.fire()
		return true, in.nav.GoTo(0)
	case "end", "End":
		in.fire()
		return true, in.nav.GoTo(in.nav.Len() - 1)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			in.fire()
			return true, in.nav.GoTo(int(key[0] - '1'))
		}
		return false, nil
	}
	return true, nil
}

// PointerDown records the start of a drag.
func (in *Input) PointerDown(x, y int) {
	in.dragging = true
	in.downX, in.downY = x, y
}

// PointerUp finishes a drag. A mostly horizontal drag longer than the
// threshold navigates: rightward goes back, leftward goes forward.
func (in *Input) PointerUp(x, y int) bool {
	if !in.dragging {
		return false
	}
	in.dragging = false
	dx, dy := x-in.downX, y-in.downY
	if abs(dx) <= abs(dy) || abs(dx) <= in.threshold {
		return false
	}
	in.fire()
	if dx > 0 {
		in.nav.Previous()
	} else {
		in.nav.Next()
	}
	return true
}

// CancelDrag drops an unfinished drag.
func (in *Input) CancelDrag() {
	in.dragging = false
}

// Wheel navigates on vertical scroll: down is next, anything else previous.
func (in *Input) Wheel(deltaY int) bool {
	in.fire()
	if deltaY > 0 {
		in.nav.Next()
	} else {
		in.nav.Previous()
	}
	return true
}

func (in *Input) fire() {
	if in.onNavigate != nil {
		in.onNavigate()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
