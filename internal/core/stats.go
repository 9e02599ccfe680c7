package core

// Stats is a partial statistics report. Zero fields mean "unchanged"; every
// meaningful value here is strictly positive, so the zero value is free to
// act as the absent marker.
type Stats struct {
	FPS    float64
	Points int
	Speed  float64
	Zoom   float64
}

// StatsFunc receives opportunistic statistics reports: on rebuild, once per
// frame, and on parameter change. A nil StatsFunc is a documented no-op.
type StatsFunc func(Stats)
