// Package shadows computes line-of-sight visibility polygons for point light
// sources against a set of opaque line-segment obstacles.
package shadows

import (
	"sort"

	"chosenoffset.com/umbra/internal/geom"
)

// ray is a candidate sweep direction toward an obstacle endpoint. dir is the
// unnormalized endpoint-minus-light vector; angle is its polar angle, used
// for the sweep ordering.
type ray struct {
	dir   geom.Vec2
	angle float64
}

// endpointHit records an obstacle whose endpoint lies exactly on the current
// ray, with the ray scaling factor at which it is reached.
type endpointHit struct {
	obstacle int
	dist     float64
}

// ComputeVisibilityPolygon calculates the region visible from lightPos as an
// ordered closed polygon (last vertex connects back to the first). Every
// obstacle segment is opaque; the caller must include segments that bound the
// viewport so every ray terminates. maxDistance must exceed any possible
// in-window distance (it seeds the nearest-hit search, it is never emitted).
//
// The light position is rounded to integer coordinates before the sweep, and
// grazing an obstacle endpoint is detected by exact comparison of the
// intersection parameter. Both are exact in float arithmetic when obstacle
// coordinates are integral, which level validation guarantees.
func ComputeVisibilityPolygon(lightPos geom.Vec2, obstacles []geom.Segment, maxDistance float64) []geom.Vec2 {
	pos := lightPos.Round()
	rays := collectRays(pos, obstacles)
	sort.Slice(rays, func(i, j int) bool { return rays[i].angle < rays[j].angle })

	poly := make([]geom.Vec2, 0, 2*len(rays))

	// onObstacle tracks the obstacle whose silhouette the sweep is currently
	// riding (-1 = none). It decides, at each grazed endpoint, whether the
	// polygon is continuing past a corner or entering a new near edge, which
	// fixes the emission order of the near/far vertex pair.
	onObstacle := -1
	firstObstacle := -1
	firstPair := false

	for n, r := range rays {
		nearest := -1
		minDist := maxDistance / r.dir.Length()
		bounded := false
		var ends []endpointHit

		for i, obs := range obstacles {
			t1, t2, ok := geom.IntersectRayLine(pos, r.dir, obs.A, obs.B)
			if !ok {
				continue
			}
			if t2 == 0 || t2 == 1 {
				ends = append(ends, endpointHit{obstacle: i, dist: t1})
			} else if t1 < minDist {
				nearest = i
				minDist = t1
				bounded = true
			}
		}

		closest := -1
		closestDist := minDist
		for _, e := range ends {
			if e.dist < closestDist {
				closest = e.obstacle
				closestDist = e.dist
			}
		}

		switch {
		case closest < 0:
			// Ray terminates on a segment interior.
			poly = append(poly, pos.Add(r.dir.Scale(minDist)))
		case closest == onObstacle:
			// Still riding the same silhouette: close past the corner, then
			// continue on whatever lies behind it.
			poly = append(poly, pos.Add(r.dir.Scale(closestDist)))
			if bounded {
				poly = append(poly, pos.Add(r.dir.Scale(minDist)))
			}
		default:
			// Entering a new obstacle's near edge.
			if bounded {
				poly = append(poly, pos.Add(r.dir.Scale(minDist)))
				if n == 0 {
					firstPair = true
				}
			}
			poly = append(poly, pos.Add(r.dir.Scale(closestDist)))
			nearest = closest
		}
		onObstacle = nearest

		if n == 0 {
			firstObstacle = onObstacle
		}
	}

	// If the sweep started by entering an obstacle silhouette (far point
	// then near point) and ended riding that same obstacle, the first two
	// vertices belong to one silhouette edge split across the angular
	// wraparound and were emitted in the wrong order; swap them to keep the
	// polygon simple.
	if firstPair && onObstacle == firstObstacle && len(poly) >= 2 {
		poly[0], poly[1] = poly[1], poly[0]
	}

	return poly
}

// collectRays builds one ray per distinct endpoint direction. Duplicate
// directions (obstacles sharing an endpoint, such as adjacent boundary
// segments) would double-emit vertices, so they are collapsed. Zero-length
// rays (light sitting exactly on an endpoint) contribute nothing.
func collectRays(pos geom.Vec2, obstacles []geom.Segment) []ray {
	seen := make(map[float64]bool, 2*len(obstacles))
	rays := make([]ray, 0, 2*len(obstacles))
	for _, obs := range obstacles {
		for _, end := range [2]geom.Vec2{obs.A, obs.B} {
			dir := end.Sub(pos)
			if dir.IsZero() {
				continue
			}
			angle := dir.Angle()
			if seen[angle] {
				continue
			}
			seen[angle] = true
			rays = append(rays, ray{dir: dir, angle: angle})
		}
	}
	return rays
}
