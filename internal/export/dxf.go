package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/modernheim/dressroom/internal/layout"
	"github.com/modernheim/dressroom/internal/model"
)

// ExportFloorPlan writes a top-view DXF plan of the bay polyline for
// CAD handoff. Straight bays become depth rectangles along the walk
// direction; corner bays become their square outer footprint. World X
// maps to DXF x and world Z to DXF y; all coordinates are centimeters.
func ExportFloorPlan(path string, plan layout.Plan, dims model.Dimensions) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("nothing to draw: configuration has no bays")
	}

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	if _, err := d.AddLayer("PLAN", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}

	for _, p := range plan.Placements {
		var corners []layout.Vec3
		if p.Bay.Type == model.BayCorner {
			size := dims.CornerOuterSize
			corners = footprint(p.EntryPoint, p.Rotation, size, size)
		} else {
			corners = footprint(p.EntryPoint, p.Rotation, p.Bay.Width, dims.FrameDepth)
		}

		for i := range corners {
			a := corners[i]
			b := corners[(i+1)%len(corners)]
			if _, err := d.Line(a.X, a.Z, 0, b.X, b.Z, 0); err != nil {
				return fmt.Errorf("failed to draw bay outline: %w", err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// footprint returns the four ground-plane corners of a width x depth
// rectangle anchored at origin and rotated by the bay heading. Depth
// extends behind the walk line, matching the frame orientation.
func footprint(origin layout.Vec3, rotation, width, depth float64) []layout.Vec3 {
	local := []layout.Vec3{
		{},
		{X: width},
		{X: width, Z: depth},
		{Z: depth},
	}
	out := make([]layout.Vec3, len(local))
	for i, v := range local {
		out[i] = origin.Add(v.RotateY(rotation))
	}
	return out
}
