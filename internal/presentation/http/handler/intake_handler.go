package handler

import (
	"github.com/fieldserve/restoration-api/internal/application/service"
	"github.com/fieldserve/restoration-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// IntakeHandler handles intake submission HTTP requests
type IntakeHandler struct {
	intakeService *service.IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeService *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// Submit handles an intake form submission. One call resolves the customer,
// registers the property, allocates a job number and creates the job.
func (h *IntakeHandler) Submit(c *gin.Context) {
	var input service.IntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.intakeService.Submit(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Intake submitted successfully", result)
}
