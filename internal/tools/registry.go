// ABOUTME: Closed registry of the named recipe tools
// ABOUTME: Every tool returns plain text and degrades to "" instead of failing
package tools

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dapoerjuna/juna/internal/core"
	"github.com/dapoerjuna/juna/internal/models"
	"github.com/dapoerjuna/juna/internal/store"
)

// DefaultTopK is the retrieval depth when a tool call gives none.
const DefaultTopK = 4

// mostLovedCount is the fixed size of the global popularity ranking.
const mostLovedCount = 5

// Handler executes one tool call. Handlers never return errors: absence
// of data yields an empty string so a bad tool call cannot crash the
// conversational flow.
type Handler func(args map[string]string) string

// Registry maps tool names to handlers. The tool set is closed and
// validated at registration time, not at call time.
type Registry struct {
	handlers map[string]Handler
	names    []string
}

// NewRegistry builds the full tool surface over the given collaborators.
func NewRegistry(recipes *store.Store, retriever core.Retriever, sess *core.Session) (*Registry, error) {
	if recipes == nil {
		return nil, fmt.Errorf("recipe store is required")
	}
	if retriever == nil {
		return nil, fmt.Errorf("retriever is required")
	}
	if sess == nil {
		return nil, fmt.Errorf("session is required")
	}

	r := &Registry{handlers: make(map[string]Handler)}

	retrieve := func(args map[string]string) string {
		k := DefaultTopK
		if raw, ok := args["k"]; ok {
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
				k = n
			}
		}
		blocks, err := retriever.Query(args["query"], k)
		if err != nil {
			return ""
		}
		return models.JoinBlocks(blocks)
	}

	register := func(name string, h Handler) error {
		if name == "" {
			return fmt.Errorf("tool name cannot be empty")
		}
		if h == nil {
			return fmt.Errorf("tool %q has no handler", name)
		}
		if _, dup := r.handlers[name]; dup {
			return fmt.Errorf("tool %q registered twice", name)
		}
		r.handlers[name] = h
		r.names = append(r.names, name)
		return nil
	}

	registrations := []struct {
		name    string
		handler Handler
	}{
		{"retrieve_recipe", retrieve},
		// Alias of retrieve_recipe.
		{"get_recipe", retrieve},
		{"filter_by_category", func(args map[string]string) string {
			return core.FilterByCategory(args["recipes"], args["category"])
		}},
		{"filter_by_weight", func(args map[string]string) string {
			return core.FilterByWeight(args["recipes"], args["meal_weight"])
		}},
		{"filter_by_difficulty", func(args map[string]string) string {
			return core.FilterByDifficulty(args["recipes"], args["difficulty"])
		}},
		{"filter_by_ingredients", func(args map[string]string) string {
			recipes, ok := args["recipes"]
			if !ok || recipes == "" {
				recipes = sess.LastRecipes
			}
			return core.FilterByIngredients(args["ingredients"], recipes)
		}},
		{"get_most_loved", func(map[string]string) string {
			// Ranks the whole store by loves; bypasses retrieval and any
			// prior filter chain on purpose.
			top := recipes.MostLoved(mostLovedCount)
			blocks := make([]string, len(top))
			for i, rec := range top {
				blocks[i] = models.FormatBlock(rec)
			}
			return models.JoinBlocks(blocks)
		}},
		{"get_recipe_details", func(args map[string]string) string {
			blob, ok := args["recipes"]
			if !ok || blob == "" {
				blob = sess.LastRecipes
			}
			return core.RecipeDetails(args["selection"], blob)
		}},
		{"set_juna_attitude", func(args map[string]string) string {
			att := strings.ToLower(strings.TrimSpace(args["attitude"]))
			if att == "" {
				att = models.AttitudeKind
			}
			sess.Attitude = att
			return att
		}},
	}

	for _, reg := range registrations {
		if err := register(reg.name, reg.handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Call dispatches a tool by name. Unknown names yield an empty string,
// matching the degrade-to-empty policy of the tools themselves.
func (r *Registry) Call(name string, args map[string]string) string {
	h, ok := r.handlers[name]
	if !ok {
		return ""
	}
	if args == nil {
		args = map[string]string{}
	}
	return h(args)
}

// Has reports whether a tool name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	sort.Strings(names)
	return names
}
