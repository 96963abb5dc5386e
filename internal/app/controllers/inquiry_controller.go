package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/app/services"
	"github.com/mwss/sevaportal/internal/middleware"
)

// InquiryController handles the public volunteer and contact forms and
// their admin workflow.
type InquiryController struct {
	inquiryService *services.InquiryService
	logger         zerolog.Logger
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService, logger zerolog.Logger) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// ApplyVolunteer records a public volunteer application
func (c *InquiryController) ApplyVolunteer(ctx *gin.Context) {
	var req dto.VolunteerApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.inquiryService.ApplyVolunteer(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, app)
}

// ListVolunteers returns all volunteer applications
func (c *InquiryController) ListVolunteers(ctx *gin.Context) {
	apps, err := c.inquiryService.ListVolunteers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, apps)
}

// UpdateVolunteer records an admin decision or note
func (c *InquiryController) UpdateVolunteer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateVolunteerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.inquiryService.UpdateVolunteer(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, app)
}

// DeleteVolunteer removes a volunteer application
func (c *InquiryController) DeleteVolunteer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.inquiryService.DeleteVolunteer(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Volunteer application deleted"})
}

// SubmitInquiry records a public contact form submission
func (c *InquiryController) SubmitInquiry(ctx *gin.Context) {
	var req dto.ContactInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inquiry, err := c.inquiryService.SubmitInquiry(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, inquiry)
}

// ListInquiries returns all contact inquiries
func (c *InquiryController) ListInquiries(ctx *gin.Context) {
	inquiries, err := c.inquiryService.ListInquiries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiries)
}

// UpdateInquiry moves an inquiry through its workflow
func (c *InquiryController) UpdateInquiry(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inquiry, err := c.inquiryService.UpdateInquiry(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inquiry)
}

// DeleteInquiry removes a contact inquiry
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.inquiryService.DeleteInquiry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Inquiry deleted"})
}
