package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/internal/transport/http/middleware"
	"miniblog/internal/view"
)

// PostWebHandler serves the browser-facing post CRUD routes.
type PostWebHandler struct {
	posts *service.PostService
	users *service.UserService
	views *view.Renderer
}

func NewPostWebHandler(posts *service.PostService, users *service.UserService, views *view.Renderer) *PostWebHandler {
	return &PostWebHandler{posts: posts, users: users, views: views}
}

type postFormData struct {
	Title    string
	Content  string
	IsPublic bool
}

type postFormPage struct {
	page
	Errors   []string
	FormData postFormData
	PostID   int64
}

// ShowNew renders the empty new-post form.
func (h *PostWebHandler) ShowNew(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "new_post.html", postFormPage{
		page: currentPage(r, h.users),
	})
}

// Create handles the new-post form submission. The public checkbox is
// opt-in: an untouched form produces a private post.
func (h *PostWebHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	req := model.PostRequest{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		IsPublic: r.FormValue("isPublic") == "on",
	}
	formData := postFormData{Title: req.Title, Content: req.Content, IsPublic: req.IsPublic}

	if _, err := h.posts.Create(r.Context(), userID, &req); err != nil {
		data := postFormPage{page: currentPage(r, h.users), FormData: formData}
		if ve, ok := model.AsValidationError(err); ok {
			data.Errors = ve.Messages
		} else {
			log.Printf("[ERROR] create post: user=%d err=%v", userID, err)
			data.Errors = []string{"Something went wrong. Please try again."}
		}
		h.views.Render(w, http.StatusOK, "new_post.html", data)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ShowEdit renders the edit form pre-filled with the post's current fields.
func (h *PostWebHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := h.posts.GetForEdit(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, r, userID, postID, err, "You can only edit your own posts")
		return
	}

	h.views.Render(w, http.StatusOK, "edit_post.html", postFormPage{
		page:     currentPage(r, h.users),
		FormData: postFormData{Title: post.Title, Content: post.Content, IsPublic: post.IsPublic},
		PostID:   post.ID,
	})
}

// Edit handles the edit form submission.
func (h *PostWebHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	req := model.PostRequest{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		IsPublic: r.FormValue("isPublic") == "on",
	}

	if _, err := h.posts.Update(r.Context(), userID, postID, &req); err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			h.views.Render(w, http.StatusOK, "edit_post.html", postFormPage{
				page:     currentPage(r, h.users),
				Errors:   ve.Messages,
				FormData: postFormData{Title: req.Title, Content: req.Content, IsPublic: req.IsPublic},
				PostID:   postID,
			})
			return
		}
		h.writePostError(w, r, userID, postID, err, "You can only edit your own posts")
		return
	}

	http.Redirect(w, r, "/post-history", http.StatusSeeOther)
}

// Delete handles the delete form submission.
func (h *PostWebHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	if err := h.posts.Delete(r.Context(), userID, postID); err != nil {
		h.writePostError(w, r, userID, postID, err, "You can only delete your own posts")
		return
	}

	http.Redirect(w, r, "/post-history", http.StatusSeeOther)
}

// writePostError maps post mutation failures to the plain-text browser
// responses.
func (h *PostWebHandler) writePostError(w http.ResponseWriter, r *http.Request, userID, postID int64, err error, forbiddenMsg string) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		http.Error(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotPostOwner):
		http.Error(w, forbiddenMsg, http.StatusForbidden)
	default:
		log.Printf("[ERROR] post route: user=%d post=%d err=%v", userID, postID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}
