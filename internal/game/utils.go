package game

// f32 narrows a coordinate for the vector package.
func f32(v float64) float32 {
	return float32(v)
}

// radius converts a diameter for the vector package.
func radius(d float64) float32 {
	return float32(d / 2)
}
