package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
)

// BatchController handles batch record endpoints
type BatchController struct {
	batchService *services.BatchService
}

// NewBatchController creates a new BatchController instance
func NewBatchController(batchService *services.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

// CreateBatch godoc
// @Summary Store a batch record
// @Description Stores a free-form JSON batch payload. Admin only.
// @Tags batches
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=models.Batch}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/batches [post]
func (bc *BatchController) CreateBatch(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	batch, err := bc.batchService.CreateBatch(c.Request.Context(), data)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: batch})
}

// ListBatches godoc
// @Summary List batch records
// @Description Returns all stored batch records. Admin only.
// @Tags batches
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Batch}
// @Security BearerAuth
// @Router /api/batches [get]
func (bc *BatchController) ListBatches(c *gin.Context) {
	batches, err := bc.batchService.ListBatches(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: batches})
}
