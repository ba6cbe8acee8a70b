package basics

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

const adminUserID = "1"

type Server struct {
	Log *zap.Logger
}

type userPath struct {
	UserID int `json:"user_id"`
}

type rolePath struct {
	Role   string `json:"role" validate:"required,oneof=admin editor viewer"`
	UserID int    `json:"user_id"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Healthz)

	r.Get("/", s.verb("GET"))
	r.Post("/", s.verb("POST"))
	r.With(kit.Deprecated(s.Log)).Put("/", s.verb("PUT"))

	r.Route("/users", func(rr chi.Router) {
		rr.Get("/", s.listUsers)
		rr.Get("/"+adminUserID, s.adminPortal)
		rr.Get("/{user_id}", s.getUser)
		rr.Get("/role/{role}/{user_id}", s.getUserByRole)
	})

	return r
}

func (s *Server) verb(method string) http.HandlerFunc {
	msg := fmt.Sprintf("This is %s request", method)
	return func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteMessage(w, http.StatusOK, msg)
	}
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	kit.WriteMessage(w, http.StatusOK, "List of users")
}

// adminPortal shadows /users/{user_id} for the admin id.
func (s *Server) adminPortal(w http.ResponseWriter, _ *http.Request) {
	kit.WriteMessage(w, http.StatusOK, "this is the admin portal")
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	in := userPath{UserID: p.PathInt("user_id")}
	if err := p.Err(); err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	kit.WriteMessage(w, http.StatusOK, fmt.Sprintf("User with ID %d", in.UserID))
}

func (s *Server) getUserByRole(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	in := rolePath{
		Role:   p.PathString("role"),
		UserID: p.PathInt("user_id"),
	}
	if !kit.CheckParams(w, r, p, &in) {
		return
	}

	kit.WriteMessage(w, http.StatusOK, fmt.Sprintf("User with ID %d has role %s", in.UserID, in.Role))
}
