package catalog

import "context"

type MemSource struct {
	items []Item
}

func NewMemSource() *MemSource {
	return &MemSource{items: SeedItems()}
}

func SeedItems() []Item {
	return []Item{
		{ID: 1, Name: "book", Price: "15", Stock: true},
		{ID: 2, Name: "game", Price: "50", Stock: true},
		{ID: 3, Name: "cd", Price: "30", Stock: true},
		{ID: 4, Name: "magazine", Price: "10", Stock: false},
		{ID: 5, Name: "book", Price: "10", Stock: true},
		{ID: 6, Name: "game", Price: "10", Stock: true},
	}
}

func (s *MemSource) Ping(ctx context.Context) error { return nil }

func (s *MemSource) Load(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}
