package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Banana-Clint/Bricool/internal/model"
	"github.com/Banana-Clint/Bricool/internal/service"
)

type ContractorHandler struct {
	contractors *service.ContractorService
	log         zerolog.Logger
}

func NewContractorHandler(contractors *service.ContractorService, log zerolog.Logger) *ContractorHandler {
	return &ContractorHandler{contractors: contractors, log: log}
}

func (h *ContractorHandler) Register(api *gin.RouterGroup) {
	group := api.Group("/contractors")
	group.GET("", h.list)
	group.GET("/search", h.search)
	group.GET("/filter", h.list)
	group.GET("/stats", h.stats)
	group.GET("/status-count", h.statusCount)
	group.GET("/type-count", h.typeCount)
	group.GET("/export", h.export)
	group.GET("/export/pdf", h.exportPDF)
	group.GET("/:id", h.getByID)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
	group.PATCH("/:id/deactivate", h.deactivate)
	group.PATCH("/:id/activate", h.activate)
	group.PATCH("/:id/rating", h.updateRating)
	group.PATCH("/:id/add-job", h.addJob)
	group.POST("/bulk/update", h.bulkUpdate)
	group.POST("/bulk/deactivate", h.bulkDeactivate)
}

func (h *ContractorHandler) list(c *gin.Context) {
	result := h.contractors.FindAll(listOptions(c))
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(result.Data),
		"data":       result.Data,
		"pagination": result.Pagination,
	})
}

func (h *ContractorHandler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Search query is required"})
		return
	}

	result := h.contractors.Search(query, listOptions(c))
	response := gin.H{
		"success": true,
		"count":   result.Total,
		"data":    result.Data,
	}
	if result.Pagination != nil {
		response["pagination"] = result.Pagination
	}
	c.JSON(http.StatusOK, response)
}

func (h *ContractorHandler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.contractors.GetStats()})
}

func (h *ContractorHandler) statusCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.contractors.CountByStatus()})
}

func (h *ContractorHandler) typeCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.contractors.CountByType()})
}

func (h *ContractorHandler) getByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	contractor, found := h.contractors.FindByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contractor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": contractor})
}

func (h *ContractorHandler) create(c *gin.Context) {
	var data model.ContractorPatch
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contractor, err := h.contractors.Create(data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Contractor created successfully",
		"data":    contractor,
	})
}

func (h *ContractorHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch model.ContractorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contractor, err := h.contractors.Update(id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contractor updated successfully",
		"data":    contractor,
	})
}

func (h *ContractorHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.contractors.Delete(id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contractor deleted successfully",
	})
}

func (h *ContractorHandler) deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *ContractorHandler) activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *ContractorHandler) setActive(c *gin.Context, active bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var (
		contractor model.Contractor
		err        error
		message    string
	)
	if active {
		contractor, err = h.contractors.Activate(id)
		message = "Contractor activated successfully"
	} else {
		contractor, err = h.contractors.Deactivate(id)
		message = "Contractor deactivated successfully"
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": contractor})
}

func (h *ContractorHandler) updateRating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		Rating *float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if body.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Rating is required"})
		return
	}

	contractor, err := h.contractors.UpdateRating(id, *body.Rating)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contractor rating updated successfully",
		"data":    contractor,
	})
}

func (h *ContractorHandler) addJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		JobCompleted bool `json:"jobCompleted"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contractor, err := h.contractors.AddJob(id, body.JobCompleted)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "Job added to contractor"
	if body.JobCompleted {
		message += " (completed)"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": contractor})
}

type bulkItemResult struct {
	ID      int               `json:"id"`
	Success bool              `json:"success"`
	Data    *model.Contractor `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// bulkUpdate applies the same patch to every id independently. Items
// fail or succeed on their own; nothing is rolled back and the overall
// request succeeds regardless.
func (h *ContractorHandler) bulkUpdate(c *gin.Context) {
	var body struct {
		IDs     []int                  `json:"ids"`
		Updates *model.ContractorPatch `json:"updates"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if len(body.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Array of contractor IDs is required"})
		return
	}
	if body.Updates == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Updates object is required"})
		return
	}

	results := make([]bulkItemResult, 0, len(body.IDs))
	failures := make([]bulkItemResult, 0)
	for _, id := range body.IDs {
		contractor, err := h.contractors.Update(id, *body.Updates)
		if err != nil {
			failures = append(failures, bulkItemResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, bulkItemResult{ID: id, Success: true, Data: &contractor})
	}

	h.respondBulk(c, "Bulk update", results, failures)
}

func (h *ContractorHandler) bulkDeactivate(c *gin.Context) {
	var body struct {
		IDs []int `json:"ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if len(body.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Array of contractor IDs is required"})
		return
	}

	results := make([]bulkItemResult, 0, len(body.IDs))
	failures := make([]bulkItemResult, 0)
	for _, id := range body.IDs {
		contractor, err := h.contractors.Deactivate(id)
		if err != nil {
			failures = append(failures, bulkItemResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, bulkItemResult{ID: id, Success: true, Data: &contractor})
	}

	h.respondBulk(c, "Bulk deactivation", results, failures)
}

func (h *ContractorHandler) respondBulk(c *gin.Context, operation string, results, failures []bulkItemResult) {
	response := gin.H{
		"success": true,
		"message": fmt.Sprintf("%s completed: %d successful, %d failed", operation, len(results), len(failures)),
		"results": results,
	}
	if len(failures) > 0 {
		response["errors"] = failures
	}
	c.JSON(http.StatusOK, response)
}

func (h *ContractorHandler) export(c *gin.Context) {
	result, err := h.contractors.ExportRoster(listOptions(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *ContractorHandler) exportPDF(c *gin.Context) {
	result, err := h.contractors.ExportRosterPDF(listOptions(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

// handleError maps contractor service failures to status codes. On
// this surface uniqueness conflicts are 400, not 409.
func (h *ContractorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrContractorActive):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("contractor request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

func listOptions(c *gin.Context) service.ContractorListOptions {
	opts := service.ContractorListOptions{
		Search:         c.Query("search"),
		Status:         c.Query("status"),
		ContractorType: c.Query("contractorType"),
		Speciality:     c.Query("speciality"),
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
		Page:           intQuery(c, "page"),
		Limit:          intQuery(c, "limit"),
	}

	if raw := c.Query("minRating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			opts.MinRating = &minRating
		}
	}
	if raw := c.Query("isActive"); raw != "" {
		isActive := raw == "true"
		opts.IsActive = &isActive
	}

	return opts
}
