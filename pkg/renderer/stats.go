package renderer

// RenderStats tracks statistics for a trace pass
type RenderStats struct {
	Pixels int // Pixels rendered
	Rays   int // Rays cast, including shadow and reflection rays
	Tiles  int // Tiles rendered
}

// Merge folds another set of statistics into this one
func (s *RenderStats) Merge(other RenderStats) {
	s.Pixels += other.Pixels
	s.Rays += other.Rays
	s.Tiles += other.Tiles
}
