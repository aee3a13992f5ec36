// Package layout computes world-space positions for the ordered bay
// sequence. The walk is turtle-style: a cursor with a position and a
// heading advances through each bay, and a corner bay turns the heading
// a quarter turn clockwise. The result is a deterministic polyline in
// which each bay continues exactly where the previous one ended.
//
// The engine performs no overlap detection: a long enough run of bays
// can geometrically loop back onto itself and is still accepted.
package layout

import (
	"math"

	"github.com/modernheim/dressroom/internal/model"
)

// Vec3 is a point in world space. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// RotateY rotates v around the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Placement is the computed pose of one bay.
type Placement struct {
	Bay        model.BayConfig
	Position   Vec3    // bay center for normal bays, entry anchor for corners
	Rotation   float64 // heading in radians while traversing this bay
	EntryPoint Vec3
	ExitPoint  Vec3
}

// Plan is the layout of a whole configuration.
type Plan struct {
	Placements []Placement
	HasCorner  bool
}

// Compute walks the bay sequence from the origin with heading 0 and
// returns each bay's pose. It is a pure function of its inputs and is
// recomputed from scratch on every configuration change.
func Compute(bays []model.BayConfig, dims model.Dimensions) Plan {
	plan := Plan{Placements: make([]Placement, 0, len(bays))}

	pos := Vec3{}
	rot := 0.0

	for _, bay := range bays {
		if bay.Type == model.BayCorner {
			plan.HasCorner = true

			offset := Vec3{X: dims.CornerExitOffset, Z: dims.CornerExitOffset}.RotateY(rot)
			exit := pos.Add(offset)

			plan.Placements = append(plan.Placements, Placement{
				Bay:        bay,
				Position:   pos,
				Rotation:   rot,
				EntryPoint: pos,
				ExitPoint:  exit,
			})

			pos = exit
			rot -= math.Pi / 2
			continue
		}

		move := Vec3{X: bay.Width}.RotateY(rot)
		exit := pos.Add(move)
		center := pos.Add(Vec3{X: bay.Width / 2}.RotateY(rot))

		plan.Placements = append(plan.Placements, Placement{
			Bay:        bay,
			Position:   center,
			Rotation:   rot,
			EntryPoint: pos,
			ExitPoint:  exit,
		})

		pos = exit
	}

	return plan
}
