package dino

import "math"

// fixedScale converts positions to integers for stable comparison.
const fixedScale = 1000

// Snapshot contains the simulation state for determinism testing and debug
// logging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Phase     int
	Runs      int
	Score     int
	HighScore int
	Beaten    bool

	PlayerBottom   int // Fixed-point
	PlayerVelocity int // Fixed-point
	Ducking        bool

	// Each obstacle is 3 ints: Kind, X (fixed-point), Frame width
	ObstacleCount int
	ObstacleData  []int

	GroundX [2]int // Fixed-point
}

func toFixed(v float64) int {
	return int(math.Round(v * fixedScale))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]int, 0, len(g.obstacles)*3)
	for i := range g.obstacles {
		o := &g.obstacles[i]
		data = append(data, int(o.kind), toFixed(o.x), o.Frame().Width())
	}

	st := g.score.State()
	return Snapshot{
		Phase:          int(g.phase),
		Runs:           g.runs,
		Score:          st.Score,
		HighScore:      st.HighScore,
		Beaten:         st.Beaten,
		PlayerBottom:   toFixed(g.player.bottom),
		PlayerVelocity: toFixed(g.player.velocity),
		Ducking:        g.player.ducking,
		ObstacleCount:  len(g.obstacles),
		ObstacleData:   data,
		GroundX:        [2]int{toFixed(g.ground[0].x), toFixed(g.ground[1].x)},
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Runs)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerBottom)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVelocity) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount)  //#nosec G115 -- hash computation
	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.GroundX[0]) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GroundX[1]) //#nosec G115 -- hash computation
	if snap.Beaten {
		h = h*31 + 1
	}
	if snap.Ducking {
		h = h*31 + 2
	}
	return h
}
