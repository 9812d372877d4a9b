// Package http wires the directory services to their REST surface.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Banana-Clint/Bricool/internal/model"
	"github.com/Banana-Clint/Bricool/internal/service"
)

type CustomerHandler struct {
	customers *service.CustomerService
	log       zerolog.Logger
}

func NewCustomerHandler(customers *service.CustomerService, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, log: log}
}

func (h *CustomerHandler) Register(api *gin.RouterGroup) {
	group := api.Group("/customers")
	group.GET("", h.list)
	group.GET("/search", h.search)
	group.GET("/:id", h.getByID)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

func (h *CustomerHandler) list(c *gin.Context) {
	opts := service.CustomerListOptions{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
	}

	result := h.customers.FindAll(opts)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Data,
		"pagination": result.Pagination,
	})
}

func (h *CustomerHandler) search(c *gin.Context) {
	result := h.customers.Search(c.Query("q"))

	response := gin.H{
		"success": true,
		"data":    result.Data,
		"total":   result.Total,
	}
	if result.Pagination != nil {
		response["pagination"] = result.Pagination
	}
	c.JSON(http.StatusOK, response)
}

func (h *CustomerHandler) getByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, found := h.customers.FindByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

func (h *CustomerHandler) create(c *gin.Context) {
	var data model.CustomerPatch
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	customer := h.customers.Create(data)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Customer created successfully",
		"data":    customer,
	})
}

func (h *CustomerHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch model.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	customer, err := h.customers.Update(id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer updated successfully",
		"data":    customer,
	})
}

func (h *CustomerHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.customers.Delete(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer deleted successfully",
		"data":    customer,
	})
}

// handleError maps customer service failures to status codes. Customer
// uniqueness conflicts are 409, unlike the contractor surface.
func (h *CustomerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("customer request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

// pathID parses the :id segment; a non-integer id is a bad request.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// intQuery parses an integer query parameter; absent or malformed
// values fall back to zero and pick up service defaults.
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
