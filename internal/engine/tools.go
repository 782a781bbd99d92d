package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/purrstack/catbase/internal/catdb"
	"github.com/purrstack/catbase/internal/schema"
)

// CatTools builds the catalog entries for the cat database, each handler
// closing over the given store.
func CatTools(store catdb.Store) []Entry {
	return []Entry{
		{
			Name:        "list_all_cats",
			Description: "Get a list of all cats",
			Contract:    schema.NewContract(),
			Handler:     listAllCats(store),
		},
		{
			Name:        "get_cat_by_id",
			Description: "Get information about a specific cat by ID",
			Contract: schema.NewContract(
				schema.Param{Name: "id", Type: schema.TypeNumber, Description: "Cat ID", Required: true},
			),
			Handler: getCatByID(store),
		},
		{
			Name:        "search_by_breed",
			Description: "Search for cats by breed",
			Contract: schema.NewContract(
				schema.Param{Name: "breed", Type: schema.TypeString, Description: "Breed to search for", Required: true},
			),
			Handler: searchByBreed(store),
		},
		{
			Name:        "get_indoor_cats",
			Description: "Get only indoor cats",
			Contract:    schema.NewContract(),
			Handler:     indoorCats(store),
		},
	}
}

func listAllCats(store catdb.Store) HandlerFunc {
	return func(ctx context.Context, _ schema.Args) (string, error) {
		cats, err := store.All(ctx)
		if err != nil {
			return "", err
		}
		body, err := prettyJSON(cats)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("All registered cats (%d cats):\n%s", len(cats), body), nil
	}
}

func getCatByID(store catdb.Store) HandlerFunc {
	return func(ctx context.Context, args schema.Args) (string, error) {
		raw := args.Number("id")
		if raw != math.Trunc(raw) || raw < 0 {
			return "", NewInvalidParams(fmt.Sprintf("invalid parameter %q: value %v is not a non-negative integer", "id", raw), nil)
		}
		id := int(raw)
		cat, err := store.Get(ctx, id)
		if err != nil {
			return "", err
		}
		if cat == nil {
			// A miss is a normal outcome for a lookup tool, not a failure.
			return fmt.Sprintf("Cat with ID %d not found", id), nil
		}
		body, err := prettyJSON(cat)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Cat details (ID: %d):\n%s", id, body), nil
	}
}

func searchByBreed(store catdb.Store) HandlerFunc {
	return func(ctx context.Context, args schema.Args) (string, error) {
		breed := args.String("breed")
		matches, err := store.Filter(ctx, func(c catdb.Cat) bool {
			return strings.Contains(c.Breed, breed)
		})
		if err != nil {
			return "", err
		}
		if len(matches) == 0 {
			return fmt.Sprintf("No cats found with breed %q", breed), nil
		}
		body, err := prettyJSON(matches)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Cats with breed %q (%d cats):\n%s", breed, len(matches), body), nil
	}
}

func indoorCats(store catdb.Store) HandlerFunc {
	return func(ctx context.Context, _ schema.Args) (string, error) {
		cats, err := store.Filter(ctx, func(c catdb.Cat) bool { return c.IsIndoor })
		if err != nil {
			return "", err
		}
		body, err := prettyJSON(cats)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Indoor cats (%d cats):\n%s", len(cats), body), nil
	}
}

func prettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", NewInternal(fmt.Sprintf("Serialization error: %v", err))
	}
	return string(data), nil
}
