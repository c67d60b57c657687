package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type apiError struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	writeJSON(w, status, apiError{Error: true, Message: msg, Fields: fields})
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads exactly one JSON value of at most limit bytes and rejects
// fields the target does not declare.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// writeDecodeErr answers a body that could not be decoded.
func writeDecodeErr(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeErr(w, StatusRequestEntityTooLarge, MsgTooLarge, map[string]string{"body": fmt.Sprintf("max %d bytes", tooLarge.Limit)})
		return
	}
	writeErr(w, StatusBadRequest, MsgInvalidJSON, map[string]string{"body": err.Error()})
}
