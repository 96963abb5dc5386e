package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/app/services"
	"github.com/mwss/sevaportal/internal/middleware"
)

// ExamController handles result and admit card operations
type ExamController struct {
	examService *services.ExamService
	logger      zerolog.Logger
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService, logger zerolog.Logger) *ExamController {
	return &ExamController{
		examService: examService,
		logger:      logger,
	}
}

// ListResults returns all results for admins and the caller's published
// results for students.
func (c *ExamController) ListResults(ctx *gin.Context) {
	results, err := c.examService.ListResults(ctx, middleware.Role(ctx), middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// ResultsForStudent returns one student's results, filtered to published
// ones for non-admin callers.
func (c *ExamController) ResultsForStudent(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	results, err := c.examService.ResultsForStudent(ctx, studentID, middleware.Role(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// CreateResult uploads one result
func (c *ExamController) CreateResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.examService.CreateResult(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// UpdateResult applies a partial update to a result
func (c *ExamController) UpdateResult(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.examService.UpdateResult(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteResult removes a result
func (c *ExamController) DeleteResult(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.examService.DeleteResult(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Result deleted"})
}

// BulkResults uploads many results at once
func (c *ExamController) BulkResults(ctx *gin.Context) {
	var req dto.BulkResultsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.examService.BulkResults(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListAdmitCards returns all admit cards for admins and the caller's own
// for students.
func (c *ExamController) ListAdmitCards(ctx *gin.Context) {
	cards, err := c.examService.ListAdmitCards(ctx, middleware.Role(ctx), middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

// AdmitCardsForStudent returns one student's admit cards
func (c *ExamController) AdmitCardsForStudent(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	cards, err := c.examService.AdmitCardsForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

// CreateAdmitCard attaches an admit card document to a student
func (c *ExamController) CreateAdmitCard(ctx *gin.Context) {
	var req dto.CreateAdmitCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	card, err := c.examService.CreateAdmitCard(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, card)
}

// DeleteAdmitCard removes an admit card
func (c *ExamController) DeleteAdmitCard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.examService.DeleteAdmitCard(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Admit card deleted"})
}

// PublicAdmitCard is the unauthenticated hall-ticket lookup by roll number
func (c *ExamController) PublicAdmitCard(ctx *gin.Context) {
	resp, err := c.examService.PublicAdmitCard(ctx, ctx.Param("rollNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MyProfile bundles the calling student's record with their published
// results and admit cards.
func (c *ExamController) MyProfile(ctx *gin.Context) {
	resp, err := c.examService.MyProfile(ctx, middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
