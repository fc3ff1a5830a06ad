package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"miniblog/internal/httputil"
	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/internal/transport/http/middleware"
)

// APIHandler serves the JSON post API.
type APIHandler struct {
	posts *service.PostService
	feed  *service.FeedService
}

func NewAPIHandler(posts *service.PostService, feed *service.FeedService) *APIHandler {
	return &APIHandler{posts: posts, feed: feed}
}

// ListPosts handles GET /api/posts.
// Returns all public posts by public authors, newest first.
func (h *APIHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feed.PublicTimeline(r.Context(), 0)
	if err != nil {
		log.Printf("[ERROR] api list posts: %v", err)
		httputil.WriteInternalError(w, "Something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/{id}.
func (h *APIHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.posts.Get(r.Context(), viewerID(r), postID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrPostPrivate):
			httputil.WriteForbidden(w, "Post is private")
		case errors.Is(err, model.ErrUserPrivate):
			httputil.WriteForbidden(w, "User account is private")
		default:
			log.Printf("[ERROR] api get post: post=%d err=%v", postID, err)
			httputil.WriteInternalError(w, "Something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /api/posts (auth required).
func (h *APIHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req model.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		httputil.WriteBadRequest(w, "Title and content are required")
		return
	}

	post, err := h.posts.Create(r.Context(), userID, &req)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			httputil.WriteBadRequest(w, ve.Error())
			return
		}
		log.Printf("[ERROR] api create post: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/{id} (auth required, owner only).
func (h *APIHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		httputil.WriteBadRequest(w, "Title and content are required")
		return
	}

	post, err := h.posts.Update(r.Context(), userID, postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteForbidden(w, "You can only edit your own posts")
		default:
			log.Printf("[ERROR] api update post: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{id} (auth required, owner only).
func (h *APIHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	if err := h.posts.Delete(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteForbidden(w, "You can only delete your own posts")
		default:
			log.Printf("[ERROR] api delete post: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}
