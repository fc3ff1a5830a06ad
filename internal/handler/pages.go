package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"miniblog/internal/model"
	"miniblog/internal/policy"
	"miniblog/internal/service"
	"miniblog/internal/transport/http/middleware"
	"miniblog/internal/view"
)

// dashboardRecentLimit caps the recent-posts list on the dashboard.
const dashboardRecentLimit = 5

// PageHandler serves the logged-in pages and the public profile page.
type PageHandler struct {
	users *service.UserService
	posts *service.PostService
	feed  *service.FeedService
	views *view.Renderer
}

func NewPageHandler(users *service.UserService, posts *service.PostService, feed *service.FeedService, views *view.Renderer) *PageHandler {
	return &PageHandler{users: users, posts: posts, feed: feed, views: views}
}

type postListData struct {
	page
	Posts []model.Post
}

type profileData struct {
	page
	User      *model.User
	PostCount int
}

type settingsData struct {
	page
	Errors []string
	User   *model.User
}

type publicProfileData struct {
	page
	ProfileUser *model.User
	Posts       []model.Post
	PostCount   int
}

type privateProfileData struct {
	page
	Username string
}

type dashboardData struct {
	page
	User  *model.User
	Posts []model.Post
}

// Home renders the landing page with the most recent public posts. A store
// failure degrades to an empty list rather than an error page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feed.PublicTimeline(r.Context(), service.HomeRecentLimit)
	if err != nil {
		log.Printf("[ERROR] home page: %v", err)
		posts = []model.Post{}
	}

	h.views.Render(w, http.StatusOK, "index.html", postListData{
		page:  currentPage(r, h.users),
		Posts: posts,
	})
}

// Dashboard shows the viewer and their five most recent posts.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] dashboard: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	posts, err := h.posts.ListByAuthor(r.Context(), userID, dashboardRecentLimit)
	if err != nil {
		log.Printf("[ERROR] dashboard posts: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "dashboard.html", dashboardData{
		page:  page{CurrentUser: &model.UserSummary{ID: user.ID, Username: user.Username}},
		User:  user,
		Posts: posts,
	})
}

// PostHistory lists all of the viewer's posts, newest first.
func (h *PageHandler) PostHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	posts, err := h.posts.ListByAuthor(r.Context(), userID, 0)
	if err != nil {
		log.Printf("[ERROR] post history: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "post_history.html", postListData{
		page:  currentPage(r, h.users),
		Posts: posts,
	})
}

// Feed shows public posts from public accounts plus all of the viewer's own.
func (h *PageHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	posts, err := h.feed.Feed(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] feed: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "feed.html", postListData{
		page:  currentPage(r, h.users),
		Posts: posts,
	})
}

// Profile shows the viewer's own profile with their post count.
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] profile: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	count, err := h.posts.CountByAuthor(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] profile count: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "profile.html", profileData{
		page:      page{CurrentUser: &model.UserSummary{ID: user.ID, Username: user.Username}},
		User:      user,
		PostCount: count,
	})
}

// ShowSettings renders the settings form.
func (h *PageHandler) ShowSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] settings: user=%d err=%v", userID, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "settings.html", settingsData{
		page: page{CurrentUser: &model.UserSummary{ID: user.ID, Username: user.Username}},
		User: user,
	})
}

// UpdateSettings applies the settings form. An unchecked privacy box means a
// public account, matching how the create-post form treats its checkbox.
func (h *PageHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	req := model.SettingsRequest{
		Bio:       r.FormValue("bio"),
		IsPrivate: r.FormValue("isPrivate") == "on",
	}

	if _, err := h.users.UpdateSettings(r.Context(), userID, &req); err != nil {
		log.Printf("[ERROR] update settings: user=%d err=%v", userID, err)
		h.views.Render(w, http.StatusOK, "settings.html", settingsData{
			page:   currentPage(r, h.users),
			Errors: []string{"Something went wrong. Please try again."},
			User:   &model.User{ID: userID, Bio: req.Bio, IsPrivate: req.IsPrivate},
		})
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// PublicProfile shows another user's page. Private accounts render a stub
// page for everyone but the owner; owners see all their posts, visitors only
// the public ones.
func (h *PageHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] public profile: username=%s err=%v", username, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	viewer := viewerID(r)
	if !policy.CanReadProfile(viewer, user) {
		h.views.Render(w, http.StatusOK, "private_profile.html", privateProfileData{
			page:     currentPage(r, h.users),
			Username: user.Username,
		})
		return
	}

	isOwner := viewer != nil && *viewer == user.ID

	var posts []model.Post
	if isOwner {
		posts, err = h.posts.ListByAuthor(r.Context(), user.ID, 0)
	} else {
		posts, err = h.posts.ListPublicByAuthor(r.Context(), user.ID)
	}
	if err != nil {
		log.Printf("[ERROR] public profile posts: username=%s err=%v", username, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	count, err := h.posts.CountByAuthor(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] public profile count: username=%s err=%v", username, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "public_profile.html", publicProfileData{
		page:        currentPage(r, h.users),
		ProfileUser: user,
		Posts:       posts,
		PostCount:   count,
	})
}
