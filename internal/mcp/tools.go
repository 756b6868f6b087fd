// ABOUTME: MCP tool definitions exposing the recipe tool surface
// ABOUTME: Each named tool maps onto one registry handler
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/dapoerjuna/juna/internal/tools"
)

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// RegisterTools registers the whole tool surface with the MCP server.
func RegisterTools(server *mcpserver.MCPServer, registry *tools.Registry) *Handlers {
	handlers := &Handlers{registry: registry}

	server.AddTool(mcp.Tool{
		Name:        "retrieve_recipe",
		Description: "Retrieve the k most relevant recipe blocks for a free-text query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": stringProp("Free-text recipe query"),
				"k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of recipes to return (default: 4)",
					"default":     4,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RetrieveRecipe)

	server.AddTool(mcp.Tool{
		Name:        "get_recipe",
		Description: "Alias of retrieve_recipe.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": stringProp("Free-text recipe query"),
				"k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of recipes to return (default: 4)",
					"default":     4,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.GetRecipe)

	server.AddTool(mcp.Tool{
		Name:        "filter_by_category",
		Description: "Keep recipe blocks whose category equals the given category.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"recipes":  stringProp("Recipe blocks joined by blank lines"),
				"category": stringProp("Category to keep, e.g. 'ayam'"),
			},
			Required: []string{"recipes", "category"},
		},
	}, handlers.FilterByCategory)

	server.AddTool(mcp.Tool{
		Name:        "filter_by_weight",
		Description: "Keep recipe blocks matching a meal weight: 'ringan' or 'berat'.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"recipes":     stringProp("Recipe blocks joined by blank lines"),
				"meal_weight": stringProp("Meal weight to keep: ringan or berat"),
			},
			Required: []string{"recipes", "meal_weight"},
		},
	}, handlers.FilterByWeight)

	server.AddTool(mcp.Tool{
		Name:        "filter_by_difficulty",
		Description: "Keep recipe blocks matching a difficulty level.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"recipes":    stringProp("Recipe blocks joined by blank lines"),
				"difficulty": stringProp("Difficulty to keep, e.g. 'Mudah'"),
			},
			Required: []string{"recipes", "difficulty"},
		},
	}, handlers.FilterByDifficulty)

	server.AddTool(mcp.Tool{
		Name:        "filter_by_ingredients",
		Description: "Keep recipes whose ingredient list covers every wanted ingredient. Defaults to the last retrieval when no recipes are given.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ingredients": stringProp("Comma-separated wanted ingredients"),
				"recipes":     stringProp("Optional recipe blocks; defaults to the last retrieval"),
			},
			Required: []string{"ingredients"},
		},
	}, handlers.FilterByIngredients)

	server.AddTool(mcp.Tool{
		Name:        "get_most_loved",
		Description: "Return the five most loved recipes across the whole corpus.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetMostLoved)

	server.AddTool(mcp.Tool{
		Name:        "get_recipe_details",
		Description: "Pick one recipe from a block list by 1-based number or title fragment. Defaults to the last retrieval.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"selection": stringProp("1-based ordinal or title fragment"),
				"recipes":   stringProp("Optional recipe blocks; defaults to the last retrieval"),
			},
			Required: []string{"selection"},
		},
	}, handlers.GetRecipeDetails)

	server.AddTool(mcp.Tool{
		Name:        "set_juna_attitude",
		Description: "Set Chef Juna's attitude to 'baik', 'galak', or 'random'.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"attitude": map[string]interface{}{
					"type":        "string",
					"description": "Attitude to set (default: baik)",
					"default":     "baik",
				},
			},
		},
	}, handlers.SetJunaAttitude)

	return handlers
}
