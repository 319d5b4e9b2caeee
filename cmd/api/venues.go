package main

import (
	"net/http"

	"teamup/internal/domain/venues"
)

// ListVenues godoc
//
//	@Summary		List venues
//	@Description	Returns the venue catalog with reviews and derived ratings.
//	@Tags			venues
//	@Produce		json
//	@Success		200	{array}		venues.Venue
//	@Failure		503	{object}	error	"Store unavailable"
//	@Router			/venues [get]
func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := app.venues.Catalog(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, catalog); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateVenueReviewPayload struct {
	VenueName   string `json:"venueName" validate:"required,max=255"`
	AuthorID    string `json:"authorId" validate:"required,max=128"`
	AuthorEmail string `json:"authorEmail" validate:"omitempty,plainemail"`
	Score       int    `json:"score" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}

// CreateVenueReview godoc
//
//	@Summary		Review a venue
//	@Description	Adds a review, or replaces the author's earlier review of the same venue, and returns the venue with its recomputed rating.
//	@Tags			venues
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateVenueReviewPayload	true	"Review"
//	@Success		200		{object}	venues.Venue
//	@Failure		400		{object}	error	"Invalid request payload"
//	@Failure		404		{object}	error	"Venue not found"
//	@Router			/venues/reviews [post]
func (app *application) createVenueReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateVenueReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.venues.RecordReview(r.Context(), payload.VenueName, venues.Review{
		AuthorID:    payload.AuthorID,
		AuthorEmail: payload.AuthorEmail,
		Score:       payload.Score,
		Comment:     payload.Comment,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, venue); err != nil {
		app.internalServerError(w, r, err)
	}
}
