package render

import (
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
)

func TestShapeQueuePopsAscending(t *testing.T) {
	is := is.New(t)
	q := NewShapeQueue()

	road := NewRoad(line())
	border := NewBorder(line())
	water := NewWaterway(line(), false)

	q.Push(road, road.ZIndex())
	q.Push(border, border.ZIndex())
	q.Push(water, water.ZIndex())
	is.Equal(q.Len(), 3)

	is.Equal(q.Pop(), Shape(water))
	is.Equal(q.Pop(), Shape(border))
	is.Equal(q.Pop(), Shape(road))
	is.Equal(q.Len(), 0)
	is.Equal(q.Pop(), nil)
}

func TestShapeQueueTiesKeepInsertionOrder(t *testing.T) {
	is := is.New(t)
	q := NewShapeQueue()

	var roads []*Road
	for i := 0; i < 8; i++ {
		r := NewRoad([]orb.Point{{float64(i), 0}, {float64(i), 1}})
		roads = append(roads, r)
		q.Push(r, r.ZIndex())
	}

	for _, r := range roads {
		is.Equal(q.Pop(), Shape(r))
	}
}
