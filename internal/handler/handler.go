// Package handler contains the HTTP endpoints: browser pages rendered from
// templates and the JSON API. Handlers orchestrate services and never talk
// to the stores directly.
package handler

import (
	"net/http"

	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/internal/transport/http/middleware"
)

// page carries the fields every template's nav needs. Page data structs
// embed it.
type page struct {
	CurrentUser *model.UserSummary
}

// currentPage resolves the viewer for the nav bar. A missing or stale
// session just renders the logged-out nav.
func currentPage(r *http.Request, users *service.UserService) page {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return page{}
	}

	user, err := users.GetByID(r.Context(), userID)
	if err != nil {
		return page{}
	}
	return page{CurrentUser: &model.UserSummary{ID: user.ID, Username: user.Username}}
}

// viewerID returns a pointer to the authenticated user's ID, or nil for
// anonymous requests. The visibility policy takes this shape directly.
func viewerID(r *http.Request) *int64 {
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &id
	}
	return nil
}
