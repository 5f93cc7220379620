package geometry

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
)

// AreaSummary describes the geographic footprint of a city's listings:
// centroid and bounding box always, plus a convex outline once there are
// enough points to form one.
type AreaSummary struct {
	ListingCount int       `json:"listing_count"`
	Centroid     orb.Point `json:"centroid"`
	Bound        orb.Bound `json:"bound"`
	Outline      orb.Ring  `json:"outline,omitempty"`
}

// Summarize computes the footprint of the given listing coordinates.
// Returns nil when no listing has coordinates.
func Summarize(coords []models.Coordinate) *AreaSummary {
	if len(coords) == 0 {
		return nil
	}

	points := make([]orb.Point, len(coords))
	for i, c := range coords {
		points[i] = orb.Point{c.Longitude, c.Latitude}
	}

	mp := orb.MultiPoint(points)
	summary := &AreaSummary{
		ListingCount: len(points),
		Centroid:     centroid(points),
		Bound:        mp.Bound(),
	}
	if hull := convexHull(points); len(hull) >= 4 {
		summary.Outline = hull
	}
	return summary
}

func centroid(points []orb.Point) orb.Point {
	var lon, lat float64
	for _, p := range points {
		lon += p[0]
		lat += p[1]
	}
	n := float64(len(points))
	return orb.Point{lon / n, lat / n}
}

// convexHull runs a Graham scan over the points and returns a closed ring,
// or nil for fewer than three distinct points.
func convexHull(points []orb.Point) orb.Ring {
	if len(points) < 3 {
		return nil
	}

	pts := make([]orb.Point, len(points))
	copy(pts, points)

	// Lowest point first, ties broken by longitude, so the scan is
	// deterministic for a fixed input set.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][1] != pts[j][1] {
			return pts[i][1] < pts[j][1]
		}
		return pts[i][0] < pts[j][0]
	})

	anchor := pts[0]
	rest := pts[1:]
	sort.Slice(rest, func(i, j int) bool {
		c := cross(anchor, rest[i], rest[j])
		if c != 0 {
			return c > 0
		}
		return sqDist(anchor, rest[i]) < sqDist(anchor, rest[j])
	})

	hull := []orb.Point{anchor}
	for _, p := range rest {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	if len(hull) < 3 {
		return nil
	}

	// Close the ring
	hull = append(hull, hull[0])
	return orb.Ring(hull)
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func sqDist(a, b orb.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
