package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bellecroissant/backoffice/internal/models"
)

const birthDateFormat = "2006-01-02"

type customerRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required,phone"`
	CustomerType string  `json:"customer_type" binding:"omitempty,oneof=regular loyalty corporate"`
	BirthDate    *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address      string  `json:"address"`
	IsActive     *bool   `json:"is_active"`
}

type customerUpdateRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,min=1"`
	LastName     *string `json:"last_name" binding:"omitempty,min=1"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,phone"`
	CustomerType *string `json:"customer_type" binding:"omitempty,oneof=regular loyalty corporate"`
	BirthDate    *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address      *string `json:"address"`
	IsActive     *bool   `json:"is_active"`
}

type loyaltyRequest struct {
	Points int    `json:"points"`
	Tier   string `json:"tier" binding:"omitempty,oneof=bronze silver gold"`
}

func (s *Server) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer := models.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		CustomerType: req.CustomerType,
		Address:      req.Address,
		IsActive:     true,
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	if req.BirthDate != nil {
		d, err := time.Parse(birthDateFormat, *req.BirthDate)
		if err != nil {
			respondBindError(c, err)
			return
		}
		customer.BirthDate = &d
	}

	if err := s.customers.Create(c.Request.Context(), &customer); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.customers.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listLoyaltyMembers(c *gin.Context) {
	customers, err := s.customers.ListByType(c.Request.Context(), models.CustomerTypeLoyalty, s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := s.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req customerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := s.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.CustomerType != nil {
		customer.CustomerType = *req.CustomerType
	}
	if req.BirthDate != nil {
		d, err := time.Parse(birthDateFormat, *req.BirthDate)
		if err != nil {
			respondBindError(c, err)
			return
		}
		customer.BirthDate = &d
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.customers.Update(c.Request.Context(), &customer); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.customers.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) customerOrderSummary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	summary, err := s.customers.OrderSummary(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) upsertLoyalty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req loyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	loyalty := models.LoyaltyProgram{Points: req.Points, Tier: req.Tier}
	if err := s.customers.UpsertLoyalty(c.Request.Context(), id, &loyalty); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, loyalty)
}

func (s *Server) deleteLoyalty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.customers.DeleteLoyalty(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
