package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type RosterPayload struct {
	UserID string `json:"userId"`
}

type rosterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JoinActivity godoc
//
//	@Summary		Join an activity
//	@Description	Adds the user to the roster while there is a free slot.
//	@Tags			activities
//	@Accept			json
//	@Produce		json
//	@Param			activityID	path		string			true	"Activity ID"
//	@Param			payload		body		RosterPayload	true	"Joining user"
//	@Success		200			{object}	rosterResponse
//	@Failure		400			{object}	error	"Missing userId"
//	@Failure		404			{object}	error	"Activity not found"
//	@Failure		409			{object}	error	"ActivityFull or AlreadyJoined"
//	@Router			/activities/{activityID}/join [post]
func (app *application) joinActivityHandler(w http.ResponseWriter, r *http.Request) {
	var payload RosterPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	activity, err := app.roster.Join(r.Context(), chi.URLParam(r, "activityID"), payload.UserID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	resp := rosterResponse{
		Success: true,
		Message: "Successfully joined activity",
		Data:    activity,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// LeaveActivity godoc
//
//	@Summary		Leave an activity
//	@Tags			activities
//	@Accept			json
//	@Produce		json
//	@Param			activityID	path		string			true	"Activity ID"
//	@Param			payload		body		RosterPayload	true	"Leaving user"
//	@Success		200			{object}	rosterResponse
//	@Failure		400			{object}	error	"Missing userId"
//	@Failure		404			{object}	error	"Activity not found"
//	@Failure		409			{object}	error	"NotJoined"
//	@Router			/activities/{activityID}/leave [post]
func (app *application) leaveActivityHandler(w http.ResponseWriter, r *http.Request) {
	var payload RosterPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	activity, err := app.roster.Leave(r.Context(), chi.URLParam(r, "activityID"), payload.UserID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	resp := rosterResponse{
		Success: true,
		Message: "Successfully left activity",
		Data:    activity,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
