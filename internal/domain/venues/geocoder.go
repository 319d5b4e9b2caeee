package venues

import (
	"strings"

	"teamup/internal/apperr"
	"teamup/internal/domain/geo"
)

// Resolve finds coordinates for a free-text location by substring match
// against the catalog. The first venue in catalog order whose normalized name
// contains the query is the only candidate: if it has no coordinates yet the
// location is unresolved. Several partial matches are not disambiguated.
func Resolve(locationName string, catalog []Venue) (geo.Point, error) {
	query := Normalize(locationName)
	if query == "" {
		return geo.Point{}, apperr.NotFound("location is empty")
	}

	for i := range catalog {
		v := &catalog[i]
		if !strings.Contains(v.NormalizedName, query) {
			continue
		}
		if p, ok := v.Point(); ok {
			return p, nil
		}
		break
	}
	return geo.Point{}, apperr.NotFound("no venue with coordinates matches " + locationName)
}
