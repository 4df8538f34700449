package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bp0001/backend/api/v1/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserFinder is the lookup the user handler needs from the service layer.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (models.User, bool, error)
}

// UserHandler holds the user lookup service
type UserHandler struct {
	Users UserFinder
	Log   *zap.SugaredLogger
}

func NewUserHandler(users UserFinder, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		Users: users,
		Log:   log.Named("handlers.users"),
	}
}

// GetUserByUsername retrieves a single user by username. The path parameter
// is expected percent-encoded (see middleware.EscapedRoutePath).
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username, err := url.PathUnescape(chi.URLParam(r, "username"))
	if err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	user, found, err := h.Users.FindByUsername(r.Context(), username)
	if err != nil {
		h.Log.Errorw("user lookup failed", "error", err, "username", username)
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}
	if !found {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	SendData(w, user, http.StatusOK)
}
