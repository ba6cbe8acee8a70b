package bodies

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

type Server struct {
	Log *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Healthz)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteMessage(w, http.StatusOK, "Hello, World!")
	})

	r.Route("/body", func(rr chi.Router) {
		rr.Post("/items", s.createItem)
		rr.Put("/items/{item_id}", s.updateItem)
	})
	r.Put("/multi/items/{item_id}/users/{user_id}", s.updateItemUser)
	r.Put("/fields/items/{item_id}", s.updateConstrainedItem)
	// Both methods share the {id} pattern; handlers name it item_id / product_id.
	r.Route("/nested/products", func(rr chi.Router) {
		rr.Put("/{id}", s.updateNestedItem)
		rr.Post("/{id}", s.createProduct)
	})

	return r
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var it Item
	if !kit.BindJSON(w, r, &it) {
		return
	}

	out := createdItem{Item: it}
	if total, ok := it.TotalPrice(); ok {
		out.TotalPrice = &total
	}
	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	id := p.PathInt("item_id")
	if err := p.Err(); err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	var it Item
	if !kit.BindJSON(w, r, &it) {
		return
	}
	kit.WriteJSON(w, http.StatusOK, updatedItem{ItemID: id, Item: it})
}

func (s *Server) updateItemUser(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	path := itemUserPath{
		ItemID: p.PathInt("item_id"),
		UserID: p.PathInt("user_id"),
	}
	if !kit.CheckParams(w, r, p, &path) {
		return
	}

	var body itemUserBody
	if !kit.BindJSON(w, r, &body) {
		return
	}

	kit.WriteJSON(w, http.StatusOK, itemUserResp{
		ItemID: path.ItemID,
		UserID: path.UserID,
		Item:   body.Item,
		User:   body.User,
		Age:    *body.Age,
	})
}

func (s *Server) updateConstrainedItem(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	path := itemIDPath{ItemID: p.PathInt("item_id")}
	if !kit.CheckParams(w, r, p, &path) {
		return
	}

	var body embeddedItemBody
	if !kit.BindJSON(w, r, &body) {
		return
	}
	kit.WriteJSON(w, http.StatusOK, itemResp{ItemID: path.ItemID, Item: body.Item})
}

func (s *Server) updateNestedItem(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	path := itemIDPath{ItemID: p.PathIntAs("id", "item_id")}
	if !kit.CheckParams(w, r, p, &path) {
		return
	}

	var it NestedItem
	if !kit.BindJSON(w, r, &it) {
		return
	}
	kit.WriteJSON(w, http.StatusOK, itemResp{ItemID: path.ItemID, Item: &it})
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	path := productIDPath{ProductID: p.PathIntAs("id", "product_id")}
	if !kit.CheckParams(w, r, p, &path) {
		return
	}

	var prod Product
	if !kit.BindJSON(w, r, &prod) {
		return
	}
	kit.WriteJSON(w, http.StatusOK, productResp{ProductID: path.ProductID, Product: &prod})
}
