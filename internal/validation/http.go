package validation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

const defaultName = "Unknown"

type Server struct {
	Log *zap.Logger
}

type contactQuery struct {
	Name  string `json:"name" validate:"required,min=3,max=50,alpha"`
	Email string `json:"email" validate:"required,min=5,max=100,mailaddr"`
}

type contactResp struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

type itemIDPath struct {
	ItemID int `json:"item_id" validate:"gte=1,lte=1000"`
}

type priceRangeQuery struct {
	MinPrice *float64 `json:"min_price" validate:"required,gt=0"`
	MaxPrice *float64 `json:"max_price" validate:"required,lt=1000"`
}

type priceRangeResp struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Healthz)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteMessage(w, http.StatusOK, "Hello, World!")
	})

	r.Route("/strings", func(rr chi.Router) {
		rr.Get("/items", s.echoName)
		rr.Get("/validate", s.validateContact)
	})

	r.Route("/numbers", func(rr chi.Router) {
		rr.Get("/items/{item_id}", s.getItem)
		rr.Get("/items", s.priceRange)
	})

	return r
}

func (s *Server) echoName(w http.ResponseWriter, r *http.Request) {
	name := kit.NewParams(r).QueryString("name", defaultName)
	kit.WriteJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) validateContact(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	in := contactQuery{
		Name:  p.QueryString("name", ""),
		Email: p.QueryString("email", ""),
	}
	if err := kit.Validate(&in); err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, contactResp(in))
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	in := itemIDPath{ItemID: p.PathInt("item_id")}
	if !kit.CheckParams(w, r, p, &in) {
		return
	}

	kit.WriteJSON(w, http.StatusOK, in)
}

func (s *Server) priceRange(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	in := priceRangeQuery{
		MinPrice: p.QueryFloat("min_price"),
		MaxPrice: p.QueryFloat("max_price"),
	}
	if !kit.CheckParams(w, r, p, &in) {
		return
	}

	kit.WriteJSON(w, http.StatusOK, priceRangeResp{MinPrice: *in.MinPrice, MaxPrice: *in.MaxPrice})
}
