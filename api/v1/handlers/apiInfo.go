package handlers

import (
	"encoding/json"
	"net/http"
)

func ApiInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"message": "bp0001 API v0.1.0",
		"endpoints": map[string]string{
			"hello": "GET /api/public/hello",
			"users": "GET /api/users/{username}",
		},
	}
	json.NewEncoder(w).Encode(response)
}
