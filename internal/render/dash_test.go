package render

import (
	"testing"

	"github.com/matryer/is"
)

func TestDashRuns(t *testing.T) {
	is := is.New(t)

	runs := dashRuns([]Point{{0, 0}, {20, 0}}, []float64{6, 4})
	is.Equal(runs, [][]Point{
		{{0, 0}, {6, 0}},
		{{10, 0}, {16, 0}},
	})
}

func TestDashRunsAcrossVertices(t *testing.T) {
	is := is.New(t)

	runs := dashRuns([]Point{{0, 0}, {4, 0}, {4, 4}}, []float64{6, 2})
	is.Equal(len(runs), 1)
	is.Equal(runs[0], []Point{{0, 0}, {4, 0}, {4, 2}})
}

func TestEffectiveDash(t *testing.T) {
	is := is.New(t)

	is.Equal(effectiveDash(nil), nil)
	is.Equal(effectiveDash([]float64{0, 0}), nil)
	is.Equal(effectiveDash([]float64{5}), []float64{5, 5})
	is.Equal(effectiveDash([]float64{-3, 2}), []float64{3, 2})

	solid := []Point{{0, 0}, {1, 1}}
	is.Equal(dashRuns(solid, nil), [][]Point{solid})
}
