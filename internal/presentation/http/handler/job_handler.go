package handler

import (
	"strconv"
	"time"

	"github.com/fieldserve/restoration-api/internal/application/service"
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/internal/presentation/http/dto/response"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles listing jobs with optional status, division and storm filters
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	pageParams := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	pageParams.Validate()

	params := &repository.JobFilterParams{
		Status:     enum.JobStatus(c.Query("status")),
		Division:   enum.Division(c.Query("division")),
		Search:     c.Query("search"),
		Pagination: pageParams,
	}

	if stormIDStr := c.Query("storm_event_id"); stormIDStr != "" {
		stormID, err := uuid.Parse(stormIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid storm event ID")
			return
		}
		params.StormEventID = &stormID
	}

	result, err := h.jobService.ListJobs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Jobs retrieved successfully", result)
}

// Get handles getting a single job with its relations
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job retrieved successfully", job)
}

// GetByNumber handles looking up a job by its job number
func (h *JobHandler) GetByNumber(c *gin.Context) {
	jobNumber := c.Param("number")
	if jobNumber == "" {
		response.BadRequest(c, "Job number is required")
		return
	}

	job, err := h.jobService.GetJobByNumber(c.Request.Context(), jobNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job retrieved successfully", job)
}

// Update handles updating a job
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req struct {
		PropertyType *string `json:"property_type"`
		LossType     *string `json:"loss_type"`
		LossCause    *string `json:"loss_cause"`
		LossCategory *string `json:"loss_category"`
		LossClass    *string `json:"loss_class"`
		DateOfLoss   *string `json:"date_of_loss"`

		SquareFootage *int  `json:"square_footage"`
		YearBuilt     *int  `json:"year_built"`
		PowerOn       *bool `json:"power_on"`

		RoomsAffected  *int    `json:"rooms_affected"`
		FoundationType *string `json:"foundation_type"`
		BasementType   *string `json:"basement_type"`

		UnitsAffected   *int    `json:"units_affected"`
		FloorsAffected  *int    `json:"floors_affected"`
		ParkingLocation *string `json:"parking_location"`
		MSAOnFile       *bool   `json:"msa_on_file"`

		PaymentMethod    *string `json:"payment_method"`
		InsuranceCompany *string `json:"insurance_company"`
		PolicyNumber     *string `json:"policy_number"`
		ClaimNumber      *string `json:"claim_number"`
		Deductible       *string `json:"deductible"`
		AdjusterName     *string `json:"adjuster_name"`
		AdjusterPhone    *string `json:"adjuster_phone"`
		AdjusterEmail    *string `json:"adjuster_email"`

		InternalNotes *string `json:"internal_notes"`
		ScopeSummary  *string `json:"scope_summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateJobInput{
		ID:               id,
		PropertyType:     req.PropertyType,
		LossType:         req.LossType,
		LossCause:        req.LossCause,
		LossCategory:     req.LossCategory,
		LossClass:        req.LossClass,
		SquareFootage:    req.SquareFootage,
		YearBuilt:        req.YearBuilt,
		PowerOn:          req.PowerOn,
		RoomsAffected:    req.RoomsAffected,
		FoundationType:   req.FoundationType,
		BasementType:     req.BasementType,
		UnitsAffected:    req.UnitsAffected,
		FloorsAffected:   req.FloorsAffected,
		ParkingLocation:  req.ParkingLocation,
		MSAOnFile:        req.MSAOnFile,
		PaymentMethod:    req.PaymentMethod,
		InsuranceCompany: req.InsuranceCompany,
		PolicyNumber:     req.PolicyNumber,
		ClaimNumber:      req.ClaimNumber,
		Deductible:       req.Deductible,
		AdjusterName:     req.AdjusterName,
		AdjusterPhone:    req.AdjusterPhone,
		AdjusterEmail:    req.AdjusterEmail,
		InternalNotes:    req.InternalNotes,
		ScopeSummary:     req.ScopeSummary,
	}

	if req.DateOfLoss != nil {
		parsed, err := time.Parse("2006-01-02", *req.DateOfLoss)
		if err != nil {
			response.BadRequest(c, "Invalid date of loss, expected YYYY-MM-DD")
			return
		}
		input.DateOfLoss = &parsed
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job updated successfully", job)
}

// UpdateStatus handles transitioning a job's status
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.UpdateJobStatus(c.Request.Context(), id, enum.JobStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job status updated successfully", job)
}

// Delete handles deleting a job
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
