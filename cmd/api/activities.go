package main

import (
	"net/http"
	"strings"

	"teamup/internal/domain/activities"
	"teamup/internal/domain/discovery"
	"teamup/internal/domain/geo"
	"teamup/internal/params"

	"github.com/go-chi/chi/v5"
)

type listActivitiesResponse struct {
	Success  bool                  `json:"success"`
	Data     []activities.Activity `json:"data"`
	Total    int                   `json:"total"`
	Returned int                   `json:"returned"`
	Limit    int                   `json:"limit"`
}

// ListActivities godoc
//
//	@Summary		List activities
//	@Description	Lists activities that have not been deleted, oldest first.
//	@Tags			activities
//	@Produce		json
//	@Param			limit	query		int		false	"Max results (1-50)"	default(10)
//	@Param			sport	query		string	false	"Only activities of this sport (case insensitive)"
//	@Success		200		{object}	listActivitiesResponse
//	@Failure		400		{object}	error	"Invalid limit"
//	@Router			/activities [get]
func (app *application) listActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := params.ParseLimit(q, discovery.DefaultListLimit)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filter := activities.Filter{Sport: strings.TrimSpace(q.Get("sport"))}
	res, err := app.discovery.List(r.Context(), filter, limit)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	resp := listActivitiesResponse{
		Success:  true,
		Data:     res.Activities,
		Total:    res.Total,
		Returned: len(res.Activities),
		Limit:    limit,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type nearbyActivitiesResponse struct {
	Success      bool                       `json:"success"`
	Data         []discovery.NearbyActivity `json:"data"`
	Total        int                        `json:"total"`
	Returned     int                        `json:"returned"`
	Limit        int                        `json:"limit"`
	UserLocation geo.Point                  `json:"userLocation"`
	DistanceUnit string                     `json:"distanceUnit"`
}

// NearbyActivities godoc
//
//	@Summary		Nearby activities
//	@Description	Ranks activities by great-circle distance from lat/lng. Activities without coordinates are placed through the venue catalog; ones that cannot be placed are left out.
//	@Tags			activities
//	@Produce		json
//	@Param			lat		query		number	true	"Latitude"
//	@Param			lng		query		number	true	"Longitude"
//	@Param			limit	query		int		false	"Max results (1-50)"	default(5)
//	@Success		200		{object}	nearbyActivitiesResponse
//	@Failure		400		{object}	error	"Missing or invalid lat/lng/limit"
//	@Router			/activities/nearby [get]
func (app *application) nearbyActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	origin, err := params.ParseOrigin(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit, err := params.ParseLimit(q, discovery.DefaultNearbyLimit)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res, err := app.discovery.Nearby(r.Context(), origin, limit)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	resp := nearbyActivitiesResponse{
		Success:      true,
		Data:         res.Activities,
		Total:        res.Total,
		Returned:     len(res.Activities),
		Limit:        limit,
		UserLocation: origin,
		DistanceUnit: "kilometers",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateActivityPayload struct {
	Title     string   `json:"title" validate:"required,max=100"`
	Sport     string   `json:"sport" validate:"required,max=50"`
	Location  string   `json:"location" validate:"required,max=255"`
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng       *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Capacity  int      `json:"capacity" validate:"required,min=1,max=1000"`
	CreatedBy string   `json:"createdBy" validate:"max=128"`
}

// CreateActivity godoc
//
//	@Summary		Create an activity
//	@Description	Creates an activity. Its location is registered as a venue when no venue of that name exists yet.
//	@Tags			activities
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateActivityPayload	true	"Activity"
//	@Success		201		{object}	activities.Activity
//	@Failure		400		{object}	error	"Invalid request payload"
//	@Router			/activities [post]
func (app *application) createActivityHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateActivityPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	activity := &activities.Activity{
		Title:     payload.Title,
		Sport:     payload.Sport,
		Location:  payload.Location,
		Lat:       payload.Lat,
		Lng:       payload.Lng,
		Capacity:  payload.Capacity,
		CreatedBy: payload.CreatedBy,
	}

	created, err := app.discovery.Create(r.Context(), activity)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetActivity godoc
//
//	@Summary		Get an activity
//	@Tags			activities
//	@Produce		json
//	@Param			activityID	path		string	true	"Activity ID"
//	@Success		200			{object}	activities.Activity
//	@Failure		404			{object}	error	"Activity not found"
//	@Router			/activities/{activityID} [get]
func (app *application) getActivityHandler(w http.ResponseWriter, r *http.Request) {
	activity, err := app.discovery.Get(r.Context(), chi.URLParam(r, "activityID"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, activity); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteActivity godoc
//
//	@Summary		Delete an activity
//	@Description	Hides the activity from every listing. The record is kept.
//	@Tags			activities
//	@Produce		json
//	@Param			activityID	path		string	true	"Activity ID"
//	@Success		200			{object}	activities.Activity
//	@Failure		404			{object}	error	"Activity not found"
//	@Router			/activities/{activityID} [delete]
func (app *application) deleteActivityHandler(w http.ResponseWriter, r *http.Request) {
	activity, err := app.discovery.Delete(r.Context(), chi.URLParam(r, "activityID"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, activity); err != nil {
		app.internalServerError(w, r, err)
	}
}
