package handlers

import (
	"net/http"
)

const greeting = "Hello, world!"

// HelloHandler serves the public greeting. It takes no input and always succeeds.
func HelloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(greeting))
}
