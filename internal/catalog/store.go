package catalog

import (
	"context"
	"errors"
)

var ErrBadPrice = errors.New("stored price is not an integer")

// Item prices are kept as text, exactly as seeded, and compared as integers.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock bool   `json:"stock"`
}

// Source provides the items the catalog is built from. It is read once at
// startup; Ping backs the readiness probe.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
	Ping(ctx context.Context) error
}
