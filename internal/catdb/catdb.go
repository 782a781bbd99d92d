package catdb

import "context"

// Cat is a single database record. Records are immutable once loaded; the
// numeric ID is the identity and is unique within a store.
type Cat struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	IsIndoor    bool   `json:"is_indoor"`
	FavoriteToy string `json:"favorite_toy"`
}

// Store is the read contract the tool handlers dispatch against.
type Store interface {
	// Get returns the cat with the given ID, or (nil, nil) when no such
	// record exists. Absence is not an error.
	Get(ctx context.Context, id int) (*Cat, error)

	// All returns every record. The order is deterministic across calls
	// within a process lifetime (ascending ID).
	All(ctx context.Context) ([]Cat, error)

	// Filter returns all records satisfying pred, in All's order.
	Filter(ctx context.Context, pred func(Cat) bool) ([]Cat, error)
}

// SampleCats returns the fixed data set the server is seeded with.
func SampleCats() []Cat {
	return []Cat{
		{ID: 1, Name: "Mike", Age: 3, Breed: "Calico", Color: "Calico", IsIndoor: true, FavoriteToy: "Mouse toy"},
		{ID: 2, Name: "Shiro", Age: 5, Breed: "Persian", Color: "White", IsIndoor: true, FavoriteToy: "Yarn ball"},
		{ID: 3, Name: "Kuro", Age: 2, Breed: "Black cat", Color: "Black", IsIndoor: false, FavoriteToy: "Butterfly"},
		{ID: 4, Name: "Chatora", Age: 7, Breed: "Orange tabby", Color: "Orange tabby", IsIndoor: true, FavoriteToy: "Catnip"},
	}
}
