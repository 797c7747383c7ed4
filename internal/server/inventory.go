package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bellecroissant/backoffice/internal/models"
)

type ingredientRequest struct {
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit" binding:"required,oneof=kg g l ml pcs"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	MaxStock     decimal.Decimal `json:"max_stock"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
}

// ingredientResponse adds the computed restock flag to the stored fields
type ingredientResponse struct {
	models.Ingredient
	NeedsRestock bool `json:"needs_restock"`
}

func ingredientView(i models.Ingredient) ingredientResponse {
	return ingredientResponse{Ingredient: i, NeedsRestock: i.NeedsRestock()}
}

func ingredientViews(ingredients []models.Ingredient) []ingredientResponse {
	views := make([]ingredientResponse, len(ingredients))
	for i, ing := range ingredients {
		views[i] = ingredientView(ing)
	}
	return views
}

func (s *Server) createIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ingredient := models.Ingredient{
		Name:         req.Name,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		CostPerUnit:  req.CostPerUnit,
	}
	if err := s.ingredients.Create(c.Request.Context(), &ingredient); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredientView(ingredient))
}

func (s *Server) listIngredients(c *gin.Context) {
	ingredients, err := s.ingredients.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientViews(ingredients))
}

func (s *Server) listRestockNeeded(c *gin.Context) {
	ingredients, err := s.ingredients.ListRestockNeeded(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientViews(ingredients))
}

func (s *Server) getIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ingredient, err := s.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientView(ingredient))
}

func (s *Server) updateIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ingredient, err := s.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	ingredient.Name = req.Name
	ingredient.Unit = req.Unit
	ingredient.CurrentStock = req.CurrentStock
	ingredient.MinStock = req.MinStock
	ingredient.MaxStock = req.MaxStock
	ingredient.CostPerUnit = req.CostPerUnit

	if err := s.ingredients.Update(c.Request.Context(), &ingredient); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredientView(ingredient))
}

func (s *Server) deleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.ingredients.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type recipeLineRequest struct {
	ProductID    int64           `json:"product_id" binding:"required"`
	IngredientID int64           `json:"ingredient_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

func (s *Server) createRecipeLine(c *gin.Context) {
	var req recipeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line := models.ProductIngredient{
		ProductID:    req.ProductID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
	}
	if err := s.recipes.Create(c.Request.Context(), &line); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (s *Server) listRecipeLines(c *gin.Context) {
	lines, err := s.recipes.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if lines == nil {
		lines = []models.ProductIngredient{}
	}
	c.JSON(http.StatusOK, lines)
}

func (s *Server) getRecipeLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	line, err := s.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) updateRecipeLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req recipeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line, err := s.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	line.ProductID = req.ProductID
	line.IngredientID = req.IngredientID
	line.Quantity = req.Quantity

	if err := s.recipes.Update(c.Request.Context(), &line); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) deleteRecipeLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.recipes.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
