package handler

import (
	"strconv"

	"github.com/fieldserve/restoration-api/internal/application/service"
	"github.com/fieldserve/restoration-api/internal/presentation/http/dto/response"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers (supports both page-based and cursor-based pagination)
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

func (h *CustomerHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}
	params.Validate()

	result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer outside the intake flow
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Phone   string  `json:"phone" binding:"required"`
		Email   *string `json:"email"`
		Company *string `json:"company"`
		Source  *string `json:"source"`
		Notes   *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Company: req.Company,
		Source:  req.Source,
		Notes:   req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name            *string `json:"name"`
		Phone           *string `json:"phone"`
		Email           *string `json:"email"`
		Company         *string `json:"company"`
		Status          *string `json:"status"`
		Source          *string `json:"source"`
		LastContactType *string `json:"last_contact_type"`
		Notes           *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:              id,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Company:         req.Company,
		Status:          req.Status,
		Source:          req.Source,
		LastContactType: req.LastContactType,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListProperties handles listing a customer's properties
func (h *CustomerHandler) ListProperties(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	properties, err := h.customerService.ListProperties(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Properties retrieved successfully", properties)
}

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	customerService *service.CustomerService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(customerService *service.CustomerService) *PropertyHandler {
	return &PropertyHandler{customerService: customerService}
}

// Get handles getting a single property
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid property ID")
		return
	}

	property, err := h.customerService.GetProperty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Property retrieved successfully", property)
}

// Update handles updating a property
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid property ID")
		return
	}

	var req struct {
		Address   *string  `json:"address"`
		City      *string  `json:"city"`
		State     *string  `json:"state"`
		Zip       *string  `json:"zip"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Notes     *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.customerService.UpdateProperty(c.Request.Context(), &service.UpdatePropertyInput{
		ID:        id,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Property updated successfully", property)
}
