package main

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports that the API is up. The backing store is pinged as well.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Failure		503	{object}	error	"Store unreachable"
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.store.Ping(r.Context()); err != nil {
		app.logger.Errorw("health check failed", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "Unavailable",
			Message:   "TeamUp API cannot reach its store",
			Timestamp: time.Now().UTC(),
			Version:   version,
		})
		return
	}

	resp := healthResponse{
		Status:    "OK",
		Message:   "TeamUp API is running",
		Timestamp: time.Now().UTC(),
		Version:   version,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
