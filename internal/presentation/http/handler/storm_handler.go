package handler

import (
	"strconv"
	"time"

	"github.com/fieldserve/restoration-api/internal/application/service"
	"github.com/fieldserve/restoration-api/internal/presentation/http/dto/response"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StormHandler handles storm event HTTP requests
type StormHandler struct {
	stormService *service.StormService
}

// NewStormHandler creates a new storm handler
func NewStormHandler(stormService *service.StormService) *StormHandler {
	return &StormHandler{stormService: stormService}
}

// List handles listing storm events
func (h *StormHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.stormService.ListStormEvents(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Storm events retrieved successfully", result)
}

// Create handles creating a storm event
func (h *StormHandler) Create(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		EventDate string `json:"event_date" binding:"required"`
		Region    string `json:"region"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	event, err := h.stormService.CreateStormEvent(c.Request.Context(), &service.CreateStormEventInput{
		Name:      req.Name,
		EventDate: eventDate,
		Region:    req.Region,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Storm event created successfully", event)
}

// Get handles getting a single storm event
func (h *StormHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid storm event ID")
		return
	}

	event, err := h.stormService.GetStormEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storm event retrieved successfully", event)
}

// Update handles updating a storm event
func (h *StormHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid storm event ID")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		EventDate *string `json:"event_date"`
		Region    *string `json:"region"`
		Status    *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateStormEventInput{
		ID:     id,
		Name:   req.Name,
		Region: req.Region,
		Status: req.Status,
	}

	if req.EventDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
			return
		}
		input.EventDate = &parsed
	}

	event, err := h.stormService.UpdateStormEvent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storm event updated successfully", event)
}

// ListJobs handles listing the jobs recorded under a storm event
func (h *StormHandler) ListJobs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid storm event ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.stormService.ListStormJobs(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Storm jobs retrieved successfully", result)
}
