// ABOUTME: MCP tool handler implementations for the recipe tool surface
// ABOUTME: Thin adapters from MCP requests onto the in-process registry
package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dapoerjuna/juna/internal/tools"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	registry *tools.Registry
}

// call dispatches into the registry. Tool misses come back as empty
// text, never as MCP errors; that mirrors the tool contract.
func (h *Handlers) call(name string, args map[string]string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.registry.Call(name, args)), nil
}

// RetrieveRecipe handles the retrieve_recipe tool
func (h *Handlers) RetrieveRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.retrieve("retrieve_recipe", request)
}

// GetRecipe handles the get_recipe alias
func (h *Handlers) GetRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.retrieve("get_recipe", request)
}

func (h *Handlers) retrieve(name string, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	k := request.GetInt("k", tools.DefaultTopK)
	return h.call(name, map[string]string{
		"query": query,
		"k":     strconv.Itoa(k),
	})
}

// FilterByCategory handles the filter_by_category tool
func (h *Handlers) FilterByCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.call("filter_by_category", map[string]string{
		"recipes":  request.GetString("recipes", ""),
		"category": request.GetString("category", ""),
	})
}

// FilterByWeight handles the filter_by_weight tool
func (h *Handlers) FilterByWeight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.call("filter_by_weight", map[string]string{
		"recipes":     request.GetString("recipes", ""),
		"meal_weight": request.GetString("meal_weight", ""),
	})
}

// FilterByDifficulty handles the filter_by_difficulty tool
func (h *Handlers) FilterByDifficulty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.call("filter_by_difficulty", map[string]string{
		"recipes":    request.GetString("recipes", ""),
		"difficulty": request.GetString("difficulty", ""),
	})
}

// FilterByIngredients handles the filter_by_ingredients tool
func (h *Handlers) FilterByIngredients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ingredients, err := request.RequireString("ingredients")
	if err != nil {
		return mcp.NewToolResultError("ingredients argument is required and must be a string"), nil
	}
	return h.call("filter_by_ingredients", map[string]string{
		"ingredients": ingredients,
		"recipes":     request.GetString("recipes", ""),
	})
}

// GetMostLoved handles the get_most_loved tool
func (h *Handlers) GetMostLoved(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.call("get_most_loved", nil)
}

// GetRecipeDetails handles the get_recipe_details tool
func (h *Handlers) GetRecipeDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selection, err := request.RequireString("selection")
	if err != nil {
		return mcp.NewToolResultError("selection argument is required and must be a string"), nil
	}
	return h.call("get_recipe_details", map[string]string{
		"selection": selection,
		"recipes":   request.GetString("recipes", ""),
	})
}

// SetJunaAttitude handles the set_juna_attitude tool
func (h *Handlers) SetJunaAttitude(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.call("set_juna_attitude", map[string]string{
		"attitude": request.GetString("attitude", "baik"),
	})
}
