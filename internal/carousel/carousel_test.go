package carousel

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/notify"
	"github.com/akyairhashvil/kitchendeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gallery(n int) []models.Item {
	return testutil.Gallery(n)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, 0, nil)
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = New([]models.Item{}, 0, nil)
	require.ErrorIs(t, err, ErrEmptyCollection)
}

func TestNewRejectsBadStart(t *testing.T) {
	_, err := New(gallery(3), 3, nil)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Index)
	assert.Equal(t, 3, re.Len)
	_, err = New(gallery(3), -1, nil)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewCopiesItemsAndAssignsIDs(t *testing.T) {
	items := []models.Item{{Src: "a.jpg"}, {ID: "b", Src: "b.jpg"}}
	c, err := New(items, 0, nil)
	require.NoError(t, err)
	items[1].Src = "changed.jpg"

	got := c.Items()
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "b.jpg", got[1].Src)
	assert.Equal(t, "carousel", c.Name())

	got[0].Alt = "mutated"
	assert.Empty(t, c.Current().Alt, "Items must return a copy")
}

func TestFullCycleReturnsToStart(t *testing.T) {
	for _, n := range []int{1, 2, 6, 11} {
		for start := 0; start < n; start++ {
			c, err := New(gallery(n), start, nil)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "next x%d from %d", n, start)
			for i := 0; i < n; i++ {
				c.Previous()
			}
			assert.Equal(t, start, c.Index(), "previous x%d from %d", n, start)
		}
	}
}

func TestSixItemScenario(t *testing.T) {
	rec := &notify.Recorder{}
	c, err := New(gallery(6), 2, rec, WithName("gallery"))
	require.NoError(t, err)

	c.Previous()
	assert.Equal(t, 1, c.Index())
	c.Previous()
	c.Previous()
	assert.Equal(t, 5, c.Index())
	require.NoError(t, c.GoTo(0))
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "img-0", c.Current().ID)

	events := rec.Events()
	require.Len(t, events, 4)
	last := events[3].Payload.(notify.IndexChange)
	assert.Equal(t, notify.CarouselChanged, events[3].Kind)
	assert.Equal(t, "gallery", events[3].Source)
	assert.Equal(t, 5, last.From)
	assert.Equal(t, 0, last.To)
	assert.Equal(t, "img-0", last.Item.ID)
}

func TestGoToOutOfRangeLeavesIndex(t *testing.T) {
	rec := &notify.Recorder{}
	c, err := New(gallery(4), 1, rec)
	require.NoError(t, err)

	for _, idx := range []int{-1, 4, 100} {
		err := c.GoTo(idx)
		require.True(t, errors.Is(err, ErrIndexOutOfRange), "GoTo(%d) = %v", idx, err)
		assert.Equal(t, 1, c.Index())
	}
	assert.Empty(t, rec.Events())
}

func TestGoToSameIndexIsSilent(t *testing.T) {
	rec := &notify.Recorder{}
	c, err := New(gallery(4), 2, rec)
	require.NoError(t, err)
	require.NoError(t, c.GoTo(2))
	assert.Zero(t, rec.Count(notify.CarouselChanged))
}

func TestSingleItemNextStillNotifies(t *testing.T) {
	rec := &notify.Recorder{}
	c, err := New(gallery(1), 0, rec)
	require.NoError(t, err)
	c.Next()
	c.Previous()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 2, rec.Count(notify.CarouselChanged))
}

func TestSnapshotRestore(t *testing.T) {
	rec := &notify.Recorder{}
	c, err := New(gallery(6), 2, rec)
	require.NoError(t, err)
	c.Next()
	snap := c.Snapshot()
	assert.Equal(t, models.CarouselSnapshot{Index: 3}, snap)

	other, err := New(gallery(6), 0, nil)
	require.NoError(t, err)
	require.NoError(t, other.Restore(snap))
	assert.Equal(t, 3, other.Index())

	require.ErrorIs(t, other.Restore(models.CarouselSnapshot{Index: 6}), ErrIndexOutOfRange)
	require.ErrorIs(t, other.Restore(models.CarouselSnapshot{Index: -2}), ErrIndexOutOfRange)
	assert.Equal(t, 3, other.Index())
}
