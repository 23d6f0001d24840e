package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rotate/ecs/component"
)

// GridLines builds a square line grid on the y=0 plane spanning
// [-halfExtent, halfExtent] on X and Z. For every step i it emits the line
// parallel to X at z = halfExtent - i*spacing and the line parallel to Z at
// x = -halfExtent + i*spacing.
func GridLines(halfExtent, spacing float64) []component.Segment {
	if halfExtent <= 0 || spacing <= 0 {
		return nil
	}
	steps := int(math.Round(2 * halfExtent / spacing))
	lines := make([]component.Segment, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		off := float64(i) * spacing
		lines = append(lines,
			component.Segment{
				From: mgl64.Vec3{-halfExtent, 0, halfExtent - off},
				To:   mgl64.Vec3{halfExtent, 0, halfExtent - off},
			},
			component.Segment{
				From: mgl64.Vec3{-halfExtent + off, 0, halfExtent},
				To:   mgl64.Vec3{-halfExtent + off, 0, -halfExtent},
			},
		)
	}
	return lines
}
