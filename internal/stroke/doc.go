// Package stroke expands stroked polylines into filled outlines.
//
// # Algorithm Overview
//
// Rather than tracing a single offset outline, the expander stamps the
// stroked area out of simple closed contours:
//   - one rectangle per segment, width/2 on either side of it
//   - one stamp per corner (disk, bevel triangle, or miter wedge)
//   - one stamp per open endpoint (disk or square extension)
//
// Every contour is normalized to the same winding orientation, so
// rasterizing the whole set with the non-zero rule yields the union of
// the stamps. Overlap between neighboring stamps is intentional and
// harmless; there is no seam bookkeeping and no inner/outer ring
// construction for closed shapes.
//
// # Line Caps
//
// Line caps define the shape of stroke endpoints:
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: disk with radius = width/2
//   - CapSquare: square extending width/2 beyond the endpoint
//
// # Line Joins
//
// Line joins define how stroke segments connect:
//   - JoinMiter: sharp corner (limited by MiterLimit, bevel fallback)
//   - JoinRound: disk at the corner
//   - JoinBevel: straight edge across the corner
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width:      5,
//	    Cap:        stroke.CapRound,
//	    Join:       stroke.JoinRound,
//	    MiterLimit: 10,
//	})
//	contours := e.Expand([]stroke.Point{{X: 10, Y: 10}, {X: 50, Y: 10}}, false)
//
// The contours are ready for a non-zero scanline fill.
package stroke
