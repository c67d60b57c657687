package http

import "net/http"

const (
	StatusOK                    = http.StatusOK // 200
	StatusCreated               = http.StatusCreated
	StatusBadRequest            = http.StatusBadRequest            // 400
	StatusNotFound              = http.StatusNotFound              // 404
	StatusConflict              = http.StatusConflict              // 409
	StatusRequestEntityTooLarge = http.StatusRequestEntityTooLarge // 413
	StatusInternalServerError   = http.StatusInternalServerError   // 500
	StatusServiceUnavailable    = http.StatusServiceUnavailable    // 503
)
