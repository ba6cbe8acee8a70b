package catalog

type Query struct {
	Start int
	End   int
	ID    int
	Name  string
}

func DefaultQuery() Query {
	return Query{Start: DefaultStart, End: DefaultEnd}
}

type ResultKind int

const (
	ResultList ResultKind = iota
	ResultItem
	ResultNotFound
)

func (k ResultKind) String() string {
	switch k {
	case ResultItem:
		return "item"
	case ResultNotFound:
		return "not_found"
	default:
		return "list"
	}
}

// Result is either a single item, a not-found marker, or a (possibly empty)
// list. The three never collapse into each other.
type Result struct {
	Kind  ResultKind
	Item  Item
	Items []Item
}

// Find applies the /items precedence: a non-zero ID wins, then a non-empty
// Name, and only then Start/End pagination.
func (c *Catalog) Find(q Query) Result {
	if q.ID != 0 {
		it, ok := c.Lookup(q.ID)
		if !ok {
			return Result{Kind: ResultNotFound}
		}
		return Result{Kind: ResultItem, Item: it}
	}

	if q.Name != "" {
		return Result{Kind: ResultList, Items: c.FilterByName(q.Name)}
	}

	return Result{Kind: ResultList, Items: c.Paginate(q.Start, q.End)}
}
