package dimension

import "math"

// Vector aggregates the 12 dimension values.
type Vector struct {
	Values  [12]float64
	Weights [12]float64
}

// Current builds the vector from the static registry.
func Current() Vector {
	var v Vector
	for i, d := range registered {
		v.Values[i] = d.Value
		v.Weights[i] = d.Weight
	}
	return v
}

// Magnitude is the square root of the weighted sum of squares.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for i, val := range v.Values {
		w := val * v.Weights[i]
		sum += w * w
	}
	if sum <= 0 {
		return 0.0
	}
	return math.Sqrt(sum)
}
