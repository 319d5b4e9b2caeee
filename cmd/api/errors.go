package main

import (
	"errors"
	"net/http"

	"teamup/internal/apperr"
)

// errorResponse answers with the status and client-safe message of err's kind.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch kind := apperr.KindOf(err); {
	case errors.Is(kind, apperr.ErrInvalidArgument), errors.Is(kind, apperr.ErrMissingParameter):
		app.badRequestResponse(w, r, err)
	case errors.Is(kind, apperr.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(kind, apperr.ErrAlreadyJoined), errors.Is(kind, apperr.ErrActivityFull), errors.Is(kind, apperr.ErrNotJoined):
		app.conflictResponse(w, r, err)
	case errors.Is(kind, apperr.ErrTransient):
		app.transientErrorResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, apperr.ErrInternal.Error(), apperr.Message(err))
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	kind := apperr.KindOf(err)
	message := err.Error()
	if kind == apperr.ErrInternal {
		// decoder and validator errors carry no kind
		kind = apperr.ErrInvalidArgument
	} else {
		message = apperr.Message(err)
	}
	writeJSONError(w, http.StatusBadRequest, kind.Error(), message)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, apperr.ErrNotFound.Error(), apperr.Message(err))
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusConflict, apperr.KindOf(err).Error(), apperr.Message(err))
}

func (app *application) transientErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("transient error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("Retry-After", "1")
	writeJSONError(w, http.StatusServiceUnavailable, apperr.ErrTransient.Error(), apperr.Message(err))
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJSONError(w, http.StatusTooManyRequests, "RateLimited", "rate limit exceeded, retry after: "+retryAfter)
}

// notFoundRouteHandler answers requests that match no route.
func (app *application) notFoundRouteHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":   "Not found",
		"message": "The requested endpoint does not exist",
	})
}
