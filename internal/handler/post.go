package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/service"
)

// PostHandler handles feed reads and post mutations.
type PostHandler struct {
	feed  *service.FeedService
	debug bool
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(feed *service.FeedService, debug bool) *PostHandler {
	return &PostHandler{feed: feed, debug: debug}
}

// HandleListFeed returns one page of the global feed.
// GET /posts?page&limit
// Response: 200 {"success":true,"posts":[...],"pagination":{...}}
func (h *PostHandler) HandleListFeed(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	feedPage, err := h.feed.ListFeed(r.Context(), page, limit)
	if err != nil {
		writeServerError(w, h.debug, "Server error while fetching posts.", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts":      toPostDTOs(feedPage.Posts),
		"pagination": toPaginationDTO(feedPage.Pagination),
	})
}

// HandleCreatePost creates a post authored by the authenticated user.
// POST /posts
// Request:  {"content":"..."}
// Response: 201 {"success":true,"message":"...","post":{...}}
func (h *PostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.feed.CreatePost(r.Context(), user.ID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServerError(w, h.debug, "Server error while creating post.", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Post created successfully",
		"post":    toPostDTO(post),
	})
}

// HandleListByUser returns one page of a single author's posts plus the
// author profile.
// GET /posts/user/{userId}?page&limit
// Response: 200 {"success":true,"posts":[...],"user":{...},"pagination":{...}}
func (h *PostHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	feedPage, author, err := h.feed.ListByAuthor(r.Context(), userID, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		writeServerError(w, h.debug, "Server error while fetching user posts.", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts":      toPostDTOs(feedPage.Posts),
		"user":       toUserDTO(author),
		"pagination": toPaginationDTO(feedPage.Pagination),
	})
}

// HandleDeletePost deletes a post owned by the authenticated user.
// DELETE /posts/{postId}
// Response: 200 {"success":true,"message":"..."}
func (h *PostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("postId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	if err := h.feed.DeletePost(r.Context(), user.ID, postID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "You can only delete your own posts.")
		default:
			writeServerError(w, h.debug, "Server error while deleting post.", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Post deleted successfully",
	})
}

// queryInt parses a positive integer query parameter. Missing, non-numeric,
// or non-positive values return 0, which services treat as "use default".
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return 0
	}
	return v
}
