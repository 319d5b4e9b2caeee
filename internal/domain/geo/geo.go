package geo

import (
	"fmt"
	"math"
	"sort"

	"teamup/internal/apperr"
)

const (
	EarthRadiusKm = 6371.0
	MinLimit      = 1
	MaxLimit      = 50
)

// Point is a WGS 84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PointOf returns the point for a nullable lat/lng pair.
func PointOf(lat, lng *float64) (Point, bool) {
	if lat == nil || lng == nil {
		return Point{}, false
	}
	return Point{Lat: *lat, Lng: *lng}, true
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance is the haversine great-circle distance between a and b in kilometers.
func Distance(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ranked pairs an item with where it was found and how far away it is.
type Ranked[T any] struct {
	Item     T
	Point    Point
	Distance float64
}

// ValidateLimit rejects limits outside [MinLimit, MaxLimit].
func ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return apperr.InvalidArgument(fmt.Sprintf("limit must be a number between %d and %d", MinLimit, MaxLimit))
	}
	return nil
}

// Rank orders items by distance from origin, nearest first, and keeps at most
// limit of them. Items for which locate reports false are dropped. Equal
// distances keep their input order. It also returns how many items were
// locatable before truncation.
func Rank[T any](origin Point, items []T, locate func(T) (Point, bool), limit int) ([]Ranked[T], int, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, 0, err
	}

	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		p, ok := locate(item)
		if !ok {
			continue
		}
		ranked = append(ranked, Ranked[T]{
			Item:     item,
			Point:    p,
			Distance: Round2(Distance(origin, p)),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	total := len(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, total, nil
}
