// Package geo contains pure great-circle helpers used by the corridor check.
package geo

import "math"

const earthRadiusMi = 3958.8

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance in miles between two points,
// computed with the haversine formula on a spherical earth.
func Distance(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	rLat1 := radians(a.Lat)
	rLat2 := radians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMi * c
}

// Bearing returns the initial compass bearing in degrees [0, 360) from a to b.
func Bearing(a, b Point) float64 {
	rLat1 := radians(a.Lat)
	rLat2 := radians(b.Lat)
	dLng := radians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(rLat2)
	x := math.Cos(rLat1)*math.Sin(rLat2) - math.Sin(rLat1)*math.Cos(rLat2)*math.Cos(dLng)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

// AngleDiff returns the smallest absolute difference between two bearings,
// in [0, 180].
func AngleDiff(x, y float64) float64 {
	d := math.Mod(math.Abs(x-y), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// AdvancesCorridor reports whether a candidate drop keeps the driver inside
// the cone-shaped corridor from lastDrop toward waypoint. A nil lastDrop or
// waypoint means no corridor is active and the check passes. Otherwise the
// candidate bearing must stay within coneDeg of the route bearing, and the
// candidate's lateral deviation from the route line must not exceed
// lateralOffsetMi.
func AdvancesCorridor(lastDrop, waypoint *Point, candidate Point, coneDeg, lateralOffsetMi float64) bool {
	if lastDrop == nil || waypoint == nil {
		return true
	}

	routeBearing := Bearing(*lastDrop, *waypoint)
	candBearing := Bearing(*lastDrop, candidate)

	diff := AngleDiff(routeBearing, candBearing)
	if diff > coneDeg {
		return false
	}

	// Project the straight-line distance onto the axis perpendicular to the
	// route to get the lateral deviation.
	lateral := Distance(*lastDrop, candidate) * math.Sin(radians(diff))
	return lateral <= lateralOffsetMi
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
