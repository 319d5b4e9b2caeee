package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"teamup/internal/apperr"
	"teamup/internal/domain/geo"
)

// ParseLimit reads ?limit=... and falls back to def when it is absent.
// Non-numeric or out-of-range values are rejected rather than clamped.
func ParseLimit(q url.Values, def int) (int, error) {
	limitStr := strings.TrimSpace(q.Get("limit"))
	if limitStr == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, apperr.InvalidArgument(fmt.Sprintf("limit must be an integer, got %q", limitStr))
	}
	if err := geo.ValidateLimit(limit); err != nil {
		return 0, err
	}
	return limit, nil
}

// ParseCoordinate reads a float query parameter. Careful, keys are case sensitive.
func ParseCoordinate(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, apperr.MissingParameter("Missing required parameters: lat and lng")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.InvalidArgument(fmt.Sprintf("Invalid coordinates: %s must be a number", key))
	}
	return v, nil
}

// ParseOrigin reads ?lat=...&lng=... into a point, checking both are in range.
func ParseOrigin(q url.Values) (geo.Point, error) {
	lat, err := ParseCoordinate(q, "lat")
	if err != nil {
		return geo.Point{}, err
	}
	lng, err := ParseCoordinate(q, "lng")
	if err != nil {
		return geo.Point{}, err
	}

	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return geo.Point{}, apperr.InvalidArgument("Invalid coordinates: lat must be within [-90, 90] and lng within [-180, 180]")
	}
	return p, nil
}
