package similarity

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		measure Measure
		x, y    []float32
		want    float64
	}{
		{
			name:    "cosine identical vectors",
			measure: MeasureCosine,
			x:       []float32{1, 2, 3},
			y:       []float32{1, 2, 3},
			want:    1,
		},
		{
			name:    "cosine orthogonal vectors",
			measure: MeasureCosine,
			x:       []float32{1, 0},
			y:       []float32{0, 1},
			want:    0,
		},
		{
			name:    "dot product",
			measure: MeasureDot,
			x:       []float32{1, 2},
			y:       []float32{3, 4},
			want:    11,
		},
		{
			name:    "length mismatch scores zero",
			measure: MeasureCosine,
			x:       []float32{1, 2, 3},
			y:       []float32{1, 2},
			want:    0,
		},
		{
			name:    "empty vectors score zero",
			measure: MeasureCosine,
			x:       nil,
			y:       nil,
			want:    0,
		},
		{
			name:    "NaN value scores zero",
			measure: MeasureDot,
			x:       []float32{1, float32(math.NaN())},
			y:       []float32{1, 1},
			want:    0,
		},
		{
			name:    "zero vector cosine scores zero",
			measure: MeasureCosine,
			x:       []float32{0, 0},
			y:       []float32{1, 1},
			want:    0,
		},
		{
			name:    "unknown measure scores zero",
			measure: Measure("euclidean"),
			x:       []float32{1},
			y:       []float32{1},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.measure, tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}
