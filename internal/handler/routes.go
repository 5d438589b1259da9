package handler

import (
	"net/http"

	"github.com/jmcvie/minifeed/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, feed *service.FeedService, users *service.UserService, debug bool) {
	authHandler := NewAuthHandler(auth, debug)
	postHandler := NewPostHandler(feed, debug)
	userHandler := NewUserHandler(users, debug)

	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.Handle("GET /auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.HandleFunc("GET /posts", postHandler.HandleListFeed)
	mux.Handle("POST /posts", RequireAuth(auth, http.HandlerFunc(postHandler.HandleCreatePost)))
	mux.HandleFunc("GET /posts/user/{userId}", postHandler.HandleListByUser)
	mux.Handle("DELETE /posts/{postId}", RequireAuth(auth, http.HandlerFunc(postHandler.HandleDeletePost)))

	mux.HandleFunc("GET /users", userHandler.HandleListUsers)
	mux.HandleFunc("GET /users/{userId}", userHandler.HandleGetProfile)
	mux.Handle("PUT /users/profile", RequireAuth(auth, http.HandlerFunc(userHandler.HandleUpdateProfile)))

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Unmatched paths get a JSON 404 envelope instead of the default page.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found.")
	})
}
