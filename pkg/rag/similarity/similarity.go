package similarity

import "math"

// Measure selects how two embedding vectors are compared.
type Measure string

const (
	MeasureCosine Measure = "cosine"
	MeasureDot    Measure = "dot"
)

// Score computes the similarity between two vectors under the given measure.
// Malformed input (length mismatch, empty vectors, NaN values) scores 0
// rather than failing: one corrupt source must not abort a whole batch.
func Score(measure Measure, x, y []float32) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	for i := range x {
		if isBad(x[i]) || isBad(y[i]) {
			return 0
		}
	}

	switch measure {
	case MeasureDot:
		return dot(x, y)
	case MeasureCosine:
		return cosine(x, y)
	default:
		return 0
	}
}

func dot(x, y []float32) float64 {
	var sum float64
	for i := range x {
		sum += float64(x[i]) * float64(y[i])
	}
	return sum
}

func cosine(x, y []float32) float64 {
	var num, normX, normY float64
	for i := range x {
		num += float64(x[i]) * float64(y[i])
		normX += float64(x[i]) * float64(x[i])
		normY += float64(y[i]) * float64(y[i])
	}
	if normX == 0 || normY == 0 {
		return 0
	}
	return num / (math.Sqrt(normX) * math.Sqrt(normY))
}

func isBad(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
