package scene

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/godrays/pkg/math"
)

const scatterAttempts = 30

// Rect is an axis-aligned region of the XZ plane.
type Rect struct {
	Min, Max math.Vec2
}

func (r Rect) contains(p math.Vec2) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= r.Max.X && p.Y <= r.Max.Y
}

// Circle is a keep-out disc on the XZ plane.
type Circle struct {
	Center math.Vec2
	Radius float32
}

func blocked(p math.Vec2, keepout []Circle) bool {
	for _, c := range keepout {
		if p.Sub(c.Center).Length() < c.Radius {
			return true
		}
	}
	return false
}

// PoissonDisk scatters up to limit points in bounds so that no two are
// closer than minDist and none fall inside a keep-out disc. A limit of zero
// or less fills the region. The result depends only on seed.
func PoissonDisk(seed uint64, bounds Rect, minDist float32, limit int, keepout []Circle) []math.Vec2 {
	if minDist <= 0 || bounds.Max.X <= bounds.Min.X || bounds.Max.Y <= bounds.Min.Y {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	cell := minDist / math32.Sqrt(2)
	cols := int(math32.Ceil((bounds.Max.X-bounds.Min.X)/cell)) + 1
	rows := int(math32.Ceil((bounds.Max.Y-bounds.Min.Y)/cell)) + 1
	grid := make([]int, cols*rows) // point index + 1, 0 when empty

	cellOf := func(p math.Vec2) (int, int) {
		return int((p.X - bounds.Min.X) / cell), int((p.Y - bounds.Min.Y) / cell)
	}
	tooClose := func(p math.Vec2, points []math.Vec2) bool {
		cx, cy := cellOf(p)
		for y := max(cy-2, 0); y <= min(cy+2, rows-1); y++ {
			for x := max(cx-2, 0); x <= min(cx+2, cols-1); x++ {
				if idx := grid[y*cols+x]; idx > 0 && points[idx-1].Sub(p).Length() < minDist {
					return true
				}
			}
		}
		return false
	}
	randomIn := func() math.Vec2 {
		return math.Vec2{
			X: bounds.Min.X + rng.Float32()*(bounds.Max.X-bounds.Min.X),
			Y: bounds.Min.Y + rng.Float32()*(bounds.Max.Y-bounds.Min.Y),
		}
	}

	var points []math.Vec2
	var active []int
	add := func(p math.Vec2) {
		points = append(points, p)
		cx, cy := cellOf(p)
		grid[cy*cols+cx] = len(points)
		active = append(active, len(points)-1)
	}
	full := func() bool { return limit > 0 && len(points) >= limit }

	for i := 0; i < scatterAttempts; i++ {
		if p := randomIn(); !blocked(p, keepout) {
			add(p)
			break
		}
	}

	for len(active) > 0 && !full() {
		slot := rng.IntN(len(active))
		origin := points[active[slot]]

		found := false
		for i := 0; i < scatterAttempts; i++ {
			radius := minDist * (1 + rng.Float32())
			angle := 2 * math32.Pi * rng.Float32()
			p := math.Vec2{X: origin.X + radius*math32.Cos(angle), Y: origin.Y + radius*math32.Sin(angle)}
			if !bounds.contains(p) || blocked(p, keepout) || tooClose(p, points) {
				continue
			}
			add(p)
			found = true
			break
		}
		if !found {
			active[slot] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return points
}
