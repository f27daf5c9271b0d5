package pathfinding

import (
	"reflect"
	"testing"

	"conduit/core"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   []core.Point
		want []core.Point
	}{
		{
			name: "empty path",
			in:   nil,
			want: nil,
		},
		{
			name: "single point",
			in:   []core.Point{{X: 1, Y: 1}},
			want: []core.Point{{X: 1, Y: 1}},
		},
		{
			name: "two points unchanged",
			in:   []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
			want: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		},
		{
			name: "consecutive duplicates removed",
			in:   []core.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}},
			want: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		},
		{
			name: "collinear horizontal run collapsed",
			in:   []core.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}},
			want: []core.Point{{X: 0, Y: 0}, {X: 20, Y: 0}},
		},
		{
			name: "turn vertex kept",
			in:   []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			want: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		},
		{
			name: "direction reversal kept",
			in:   []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 0}},
			want: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 0}},
		},
		{
			name: "mixed runs and turns",
			in: []core.Point{
				{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
				{X: 10, Y: 5}, {X: 10, Y: 10}, {X: 10, Y: 10}, {X: 20, Y: 10},
			},
			want: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simplify(%v) = %v, want %v", tt.in, got, tt.want)
			}

			// Simplification must be idempotent.
			again := Simplify(got)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("Simplify not idempotent: %v -> %v", got, again)
			}
		})
	}
}
