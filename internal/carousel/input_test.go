package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputKeys(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		want    int
		handled bool
	}{
		{key: "left", start: 0, want: 5, handled: true},
		{key: "ArrowLeft", start: 3, want: 2, handled: true},
		{key: "right", start: 5, want: 0, handled: true},
		{key: " ", start: 1, want: 2, handled: true},
		{key: "home", start: 4, want: 0, handled: true},
		{key: "end", start: 1, want: 5, handled: true},
		{key: "3", start: 0, want: 2, handled: true},
		{key: "x", start: 2, want: 2, handled: false},
		{key: "0", start: 2, want: 2, handled: false},
	}
	for _, tt := range tests {
		c, err := New(gallery(6), tt.start, nil)
		require.NoError(t, err)
		in := NewInput(c, 0)
		handled, err := in.Key(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.handled, handled, tt.key)
		assert.Equal(t, tt.want, c.Index(), tt.key)
	}
}

func TestInputDigitPastEnd(t *testing.T) {
	c, err := New(gallery(3), 1, nil)
	require.NoError(t, err)
	in := NewInput(c, 0)
	handled, err := in.Key("9")
	assert.True(t, handled)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 1, c.Index())
}

func TestInputSwipe(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
		moved          bool
	}{
		{name: "swipe right goes back", x0: 100, y0: 10, x1: 200, y1: 20, want: 1, moved: true},
		{name: "swipe left goes forward", x0: 200, y0: 10, x1: 100, y1: 0, want: 3, moved: true},
		{name: "too short", x0: 100, y0: 10, x1: 150, y1: 10, want: 2},
		{name: "mostly vertical", x0: 100, y0: 0, x1: 180, y1: 120, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(gallery(6), 2, nil)
			require.NoError(t, err)
			in := NewInput(c, 0)
			in.PointerDown(tt.x0, tt.y0)
			assert.Equal(t, tt.moved, in.PointerUp(tt.x1, tt.y1))
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestInputPointerUpWithoutDown(t *testing.T) {
	c, err := New(gallery(6), 2, nil)
	require.NoError(t, err)
	in := NewInput(c, 5)
	assert.False(t, in.PointerUp(500, 0))
	in.PointerDown(0, 0)
	in.CancelDrag()
	assert.False(t, in.PointerUp(500, 0))
	assert.Equal(t, 2, c.Index())
}

func TestInputWheelAndHook(t *testing.T) {
	c, err := New(gallery(6), 2, nil)
	require.NoError(t, err)
	in := NewInput(c, 0)
	hooks := 0
	in.OnNavigate(func() { hooks++ })

	in.Wheel(3)
	assert.Equal(t, 3, c.Index())
	in.Wheel(-1)
	in.Wheel(0)
	assert.Equal(t, 1, c.Index())
	_, _ = in.Key("right")
	assert.Equal(t, 4, hooks)
}
