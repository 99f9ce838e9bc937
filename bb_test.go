package unigrid

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestBBOverlaps(t *testing.T) {
	unit := BB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name     string
		other    BB
		overlaps bool
	}{
		{
			name:     "coincident",
			other:    BB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			overlaps: true,
		},
		{
			name:     "partial overlap",
			other:    BB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{1.5, 1.5, 1.5}},
			overlaps: true,
		},
		{
			name:     "contained",
			other:    BB{Min: mgl64.Vec3{0.25, 0.25, 0.25}, Max: mgl64.Vec3{0.75, 0.75, 0.75}},
			overlaps: true,
		},
		{
			name:     "touching face",
			other:    BB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			overlaps: true,
		},
		{
			name:     "separated on x",
			other:    BB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			overlaps: false,
		},
		{
			name:     "separated on y",
			other:    BB{Min: mgl64.Vec3{0, -3, 0}, Max: mgl64.Vec3{1, -2, 1}},
			overlaps: false,
		},
		{
			name:     "separated on z",
			other:    BB{Min: mgl64.Vec3{0, 0, 1.01}, Max: mgl64.Vec3{1, 1, 2}},
			overlaps: false,
		},
		{
			name:     "overlapping on two axes only",
			other:    BB{Min: mgl64.Vec3{0.5, 0.5, 5}, Max: mgl64.Vec3{1.5, 1.5, 6}},
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.overlaps, unit.Overlaps(tt.other))
			require.Equal(t, tt.overlaps, tt.other.Overlaps(unit), "Overlaps must be symmetric")
		})
	}
}

func TestBBWidths(t *testing.T) {
	bb := BB{Min: mgl64.Vec3{-1, 0, 2}, Max: mgl64.Vec3{1, 3, 2.5}}

	require.Equal(t, mgl64.Vec3{2, 3, 0.5}, bb.Widths())
	require.Equal(t, mgl64.Vec3{1, 1.5, 0.25}, bb.HalfWidths())
	require.Equal(t, 3.0, bb.MaxWidth())
}

func TestBBDegenerate(t *testing.T) {
	point := BB{Min: mgl64.Vec3{1, 2, 3}, Max: mgl64.Vec3{1, 2, 3}}

	require.Equal(t, 0.0, point.MaxWidth())
	require.True(t, point.Overlaps(point))
	require.True(t, point.Overlaps(BB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{5, 5, 5}}))
}
