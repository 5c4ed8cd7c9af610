package httpx

import (
	"net/http"
)

// ErrorBody is the error envelope returned by the API. Both keys are always
// present.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// Fail writes an ErrorBody with the raw error text as details.
func Fail(w http.ResponseWriter, status int, message string, err error) {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Details = err.Error()
	}
	JSON(w, status, body)
}

// NotFound answers unknown routes in the same envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, ErrorBody{Message: "Not found", Details: r.Method + " " + r.URL.Path})
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, ErrorBody{Message: "Method not allowed", Details: r.Method + " " + r.URL.Path})
}
