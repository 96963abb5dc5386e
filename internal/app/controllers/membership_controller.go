package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/app/services"
	"github.com/mwss/sevaportal/internal/middleware"
)

// MembershipController handles membership and member card operations
type MembershipController struct {
	membershipService *services.MembershipService
	logger            zerolog.Logger
}

// NewMembershipController creates a new MembershipController
func NewMembershipController(membershipService *services.MembershipService, logger zerolog.Logger) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
		logger:            logger,
	}
}

// ListMemberships returns all memberships
func (c *MembershipController) ListMemberships(ctx *gin.Context) {
	memberships, err := c.membershipService.ListMemberships(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, memberships)
}

// CreateMembership signs up a new member. This endpoint is public; the
// membership number in the response is allocated server-side.
func (c *MembershipController) CreateMembership(ctx *gin.Context) {
	var req dto.CreateMembershipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	membership, err := c.membershipService.CreateMembership(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, membership)
}

// UpdateMembership applies a partial update to a membership
func (c *MembershipController) UpdateMembership(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMembershipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	membership, err := c.membershipService.UpdateMembership(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, membership)
}

// DeleteMembership removes a membership
func (c *MembershipController) DeleteMembership(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.membershipService.DeleteMembership(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Membership deleted"})
}

// ListCards returns all membership cards with memberships joined
func (c *MembershipController) ListCards(ctx *gin.Context) {
	cards, err := c.membershipService.ListCards(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

// CreateCard issues a card against a membership
func (c *MembershipController) CreateCard(ctx *gin.Context) {
	var req dto.CreateMembershipCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	card, err := c.membershipService.CreateCard(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, card)
}

// UpdateCard applies a partial update to a membership card. Approval is
// stamped with the calling admin.
func (c *MembershipController) UpdateCard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMembershipCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	card, err := c.membershipService.UpdateCard(ctx, id, middleware.PrincipalID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// DeleteCard removes a membership card
func (c *MembershipController) DeleteCard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.membershipService.DeleteCard(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Membership card deleted"})
}

// MyCard returns the calling principal's newest membership card
func (c *MembershipController) MyCard(ctx *gin.Context) {
	card, err := c.membershipService.MyCard(ctx, middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, card)
}
