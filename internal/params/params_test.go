package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamup/internal/apperr"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
		err   error
	}{
		{"", 5, nil},
		{"limit=12", 12, nil},
		{"limit=%2050%20", 50, nil},
		{"limit=0", 0, apperr.ErrInvalidArgument},
		{"limit=51", 0, apperr.ErrInvalidArgument},
		{"limit=-3", 0, apperr.ErrInvalidArgument},
		{"limit=ten", 0, apperr.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := ParseLimit(q, 5)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		query string
		err   error
	}{
		{"lat=-37.8136&lng=144.9631", nil},
		{"lat=0&lng=0", nil},
		{"lng=144.9", apperr.ErrMissingParameter},
		{"lat=-37.8", apperr.ErrMissingParameter},
		{"lat=abc&lng=144.9", apperr.ErrInvalidArgument},
		{"lat=-37.8&lng=NaN", apperr.ErrInvalidArgument},
		{"lat=91&lng=0", apperr.ErrInvalidArgument},
		{"lat=0&lng=-181", apperr.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			p, err := ParseOrigin(q)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Valid())
		})
	}
}

func TestParseOriginValues(t *testing.T) {
	p, err := ParseOrigin(url.Values{"lat": {"-37.8136"}, "lng": {"144.9631"}})
	require.NoError(t, err)
	assert.Equal(t, -37.8136, p.Lat)
	assert.Equal(t, 144.9631, p.Lng)
}
