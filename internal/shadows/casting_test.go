package shadows

import (
	"math/rand"
	"testing"

	"chosenoffset.com/umbra/internal/geom"
	"chosenoffset.com/umbra/internal/world"
)

const reach = 4500.0

func near(a, b geom.Vec2) bool {
	return a.Sub(b).Length() < 1e-6
}

// assertSimple fails if any two non-adjacent polygon edges cross.
func assertSimple(t *testing.T, poly []geom.Vec2) {
	t.Helper()
	n := len(poly)
	for i := 0; i < n; i++ {
		a1, a2 := poly[i], poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b1, b2 := poly[j], poly[(j+1)%n]
			if geom.SegmentsIntersect(a1, a2, b1, b2) {
				t.Fatalf("edges %d-%d and %d-%d cross: %v-%v x %v-%v",
					i, (i+1)%n, j, (j+1)%n, a1, a2, b1, b2)
			}
		}
	}
}

// assertVerticesOnObstacles fails if any polygon vertex does not lie on an
// obstacle segment. Every emitted vertex is either a grazed endpoint or an
// interior intersection, so this must hold for any bounded obstacle set.
func assertVerticesOnObstacles(t *testing.T, poly []geom.Vec2, obstacles []geom.Segment) {
	t.Helper()
	for i, v := range poly {
		onAny := false
		for _, obs := range obstacles {
			if obs.Dist(v) < 1e-6 {
				onAny = true
				break
			}
		}
		if !onAny {
			t.Fatalf("vertex %d at %v lies on no obstacle segment", i, v)
		}
	}
}

func TestBoundaryOnlyPolygonIsTheFourCorners(t *testing.T) {
	poly := ComputeVisibilityPolygon(geom.V(400, 300), world.Bounds(800, 600), reach)

	want := []geom.Vec2{
		geom.V(0, 0), geom.V(800, 0), geom.V(800, 600), geom.V(0, 600),
	}
	if len(poly) != len(want) {
		t.Fatalf("polygon has %d vertices (%v), want %d", len(poly), poly, len(want))
	}
	for i := range want {
		if !near(poly[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, poly[i], want[i])
		}
	}
	assertSimple(t, poly)
}

func TestSingleObstacleSilhouette(t *testing.T) {
	// The end-to-end scenario: light at (400,100), one obstacle from
	// (300,200) to (400,400), 800x600 boundary.
	obstacle := geom.Segment{A: geom.V(300, 200), B: geom.V(400, 400)}
	obstacles := append([]geom.Segment{obstacle}, world.Bounds(800, 600)...)
	lightPos := geom.V(400, 100)

	base := ComputeVisibilityPolygon(lightPos, world.Bounds(800, 600), reach)
	poly := ComputeVisibilityPolygon(lightPos, obstacles, reach)

	// One near/far vertex pair per silhouette edge; a fully visible segment
	// has two silhouette edges.
	if len(poly) != len(base)+4 {
		t.Fatalf("polygon has %d vertices (%v), want %d", len(poly), poly, len(base)+4)
	}

	// Sweep order around the light: three visible corners, then the shadow
	// cast past the far endpoint onto the bottom boundary, the silhouette
	// of the obstacle itself, and the shadow past the near endpoint onto
	// the left boundary.
	want := []geom.Vec2{
		geom.V(0, 0),
		geom.V(800, 0),
		geom.V(800, 600),
		geom.V(400, 600),
		geom.V(400, 400),
		geom.V(4000.0/13, 2800.0/13),
		geom.V(300, 200),
		geom.V(0, 500),
	}
	for i := range want {
		if !near(poly[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, poly[i], want[i])
		}
	}

	assertSimple(t, poly)
	assertVerticesOnObstacles(t, poly, obstacles)
}

func TestSweepSeamOnSameObstacle(t *testing.T) {
	// An obstacle straddling the angular wraparound at +-pi: the sweep
	// starts and ends riding it, and the first two vertices (emitted in
	// entering order by the first ray) must be swapped back.
	obstacle := geom.Segment{A: geom.V(200, 350), B: geom.V(200, 250)}
	obstacles := append([]geom.Segment{obstacle}, world.Bounds(800, 600)...)

	poly := ComputeVisibilityPolygon(geom.V(400, 300), obstacles, reach)

	want := []geom.Vec2{
		geom.V(200, 250),
		geom.V(0, 200),
		geom.V(0, 0),
		geom.V(800, 0),
		geom.V(800, 600),
		geom.V(0, 600),
		geom.V(0, 400),
		geom.V(200, 350),
	}
	if len(poly) != len(want) {
		t.Fatalf("polygon has %d vertices (%v), want %d", len(poly), poly, len(want))
	}
	for i := range want {
		if !near(poly[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, poly[i], want[i])
		}
	}
	assertSimple(t, poly)
}

func TestLightAtObstacleEndpoint(t *testing.T) {
	// A zero-length ray (light exactly on an endpoint) contributes nothing
	// instead of dividing by zero.
	obstacle := geom.Segment{A: geom.V(300, 200), B: geom.V(400, 400)}
	obstacles := append([]geom.Segment{obstacle}, world.Bounds(800, 600)...)

	poly := ComputeVisibilityPolygon(geom.V(300, 200), obstacles, reach)
	if len(poly) < 3 {
		t.Fatalf("polygon has %d vertices, want at least 3", len(poly))
	}
	assertVerticesOnObstacles(t, poly, obstacles)
}

func TestPolygonVerticesStayOnObstacles(t *testing.T) {
	// Property check over random integral obstacle configurations: every
	// vertex the sweep emits lies on some obstacle segment, inside the
	// window.
	rng := rand.New(rand.NewSource(7))
	bounds := world.Bounds(800, 600)

	for trial := 0; trial < 50; trial++ {
		obstacles := append([]geom.Segment{}, bounds...)
		for i := 0; i < 1+rng.Intn(5); i++ {
			a := geom.V(float64(50+rng.Intn(700)), float64(50+rng.Intn(500)))
			b := geom.V(float64(50+rng.Intn(700)), float64(50+rng.Intn(500)))
			if a == b {
				continue
			}
			obstacles = append(obstacles, geom.Segment{A: a, B: b})
		}
		lightPos := geom.V(float64(100+rng.Intn(600)), float64(100+rng.Intn(400)))

		poly := ComputeVisibilityPolygon(lightPos, obstacles, reach)
		if len(poly) < 4 {
			t.Fatalf("trial %d: polygon has %d vertices", trial, len(poly))
		}
		for i, v := range poly {
			if v.X < -1e-6 || v.X > 800+1e-6 || v.Y < -1e-6 || v.Y > 600+1e-6 {
				t.Fatalf("trial %d: vertex %d at %v outside the window", trial, i, v)
			}
		}
		assertVerticesOnObstacles(t, poly, obstacles)
	}
}
