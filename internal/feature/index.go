package feature

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// minExtent pads zero-width bounds; rtreego rejects rectangles without area.
const minExtent = 1e-9

// Index answers region queries over features using an R-tree.
type Index struct {
	rtree *rtreego.Rtree
	size  int
}

type indexEntry struct {
	seq  int
	f    *RawFeature
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex indexes every feature that has coordinates.
func NewIndex(fs []*RawFeature) *Index {
	idx := &Index{rtree: rtreego.NewTree(2, 25, 50)}
	for i, f := range fs {
		b, ok := f.Bound()
		if !ok {
			continue
		}
		idx.rtree.Insert(&indexEntry{seq: i, f: f, rect: toRect(b)})
		idx.size++
	}
	return idx
}

// Len returns the number of indexed features.
func (idx *Index) Len() int {
	return idx.size
}

// Query returns the features whose bounds intersect b, in the order they
// were indexed.
func (idx *Index) Query(b orb.Bound) []*RawFeature {
	spatials := idx.rtree.SearchIntersect(toRect(b))
	entries := make([]*indexEntry, 0, len(spatials))
	for _, s := range spatials {
		entries = append(entries, s.(*indexEntry))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]*RawFeature, len(entries))
	for i, e := range entries {
		out[i] = e.f
	}
	return out
}

func toRect(b orb.Bound) rtreego.Rect {
	point := rtreego.Point{b.Min.Lon(), b.Min.Lat()}
	lengths := []float64{
		math.Max(b.Max.Lon()-b.Min.Lon(), minExtent),
		math.Max(b.Max.Lat()-b.Min.Lat(), minExtent),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// TileBound returns the lon/lat bound of slippy map tile z/x/y.
func TileBound(z, x, y uint32) orb.Bound {
	return maptile.New(x, y, maptile.Zoom(z)).Bound()
}
