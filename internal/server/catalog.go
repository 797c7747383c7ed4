package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bellecroissant/backoffice/internal/models"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(c.Request.Context(), &category); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := s.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := s.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	category.Name = req.Name
	category.Description = req.Description

	if err := s.categories.Update(c.Request.Context(), &category); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type productRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	CategoryID      int64           `json:"category_id" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Image           string          `json:"image"`
	IsAvailable     *bool           `json:"is_available"`
	PreparationTime int             `json:"preparation_time" binding:"omitempty,min=0"`
}

type productUpdateRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1"`
	Description     *string          `json:"description"`
	CategoryID      *int64           `json:"category_id"`
	Price           *decimal.Decimal `json:"price"`
	Cost            *decimal.Decimal `json:"cost"`
	Image           *string          `json:"image"`
	IsAvailable     *bool            `json:"is_available"`
	PreparationTime *int             `json:"preparation_time" binding:"omitempty,min=0"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		Cost:            req.Cost,
		Image:           req.Image,
		IsAvailable:     true,
		PreparationTime: req.PreparationTime,
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := s.products.Create(c.Request.Context(), &product); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.products.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := s.products.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := s.products.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		product.PreparationTime = *req.PreparationTime
	}

	if err := s.products.Update(c.Request.Context(), &product); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.products.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listProductRecipe returns the recipe lines of one product
func (s *Server) listProductRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := s.products.Get(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	lines, err := s.recipes.ListByProduct(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if lines == nil {
		lines = []models.ProductIngredient{}
	}
	c.JSON(http.StatusOK, lines)
}
