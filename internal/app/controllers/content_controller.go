package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/app/services"
	"github.com/mwss/sevaportal/internal/middleware"
)

// ContentController handles site content, navigation, settings and the
// published payment and fee information.
type ContentController struct {
	contentService *services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

// --- menu ---

// Menu returns active navigation entries
func (c *ContentController) Menu(ctx *gin.Context) {
	items, err := c.contentService.MenuItems(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// MenuAll returns every navigation entry including disabled ones
func (c *ContentController) MenuAll(ctx *gin.Context) {
	items, err := c.contentService.MenuItems(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// CreateMenuItem adds a navigation entry
func (c *ContentController) CreateMenuItem(ctx *gin.Context) {
	var req dto.MenuItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := c.contentService.CreateMenuItem(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem replaces a navigation entry
func (c *ContentController) UpdateMenuItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.MenuItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := c.contentService.UpdateMenuItem(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a navigation entry
func (c *ContentController) DeleteMenuItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeleteMenuItem(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Menu item deleted"})
}

// --- settings ---

// Settings returns all admin settings
func (c *ContentController) Settings(ctx *gin.Context) {
	settings, err := c.contentService.Settings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// Setting returns one admin setting by key
func (c *ContentController) Setting(ctx *gin.Context) {
	setting, err := c.contentService.Setting(ctx, ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, setting)
}

// UpdateSetting changes one setting's value
func (c *ContentController) UpdateSetting(ctx *gin.Context) {
	var req dto.UpdateSettingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	setting, err := c.contentService.UpdateSetting(ctx, ctx.Param("key"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, setting)
}

// CreateSetting registers a new setting definition
func (c *ContentController) CreateSetting(ctx *gin.Context) {
	var setting models.AdminSetting
	if !middleware.BindJSON(ctx, &setting) {
		return
	}

	if err := c.contentService.CreateSetting(ctx, &setting); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, setting)
}

// PublicSettings returns all settings without authentication. The frontend
// uses these for feature toggles.
func (c *ContentController) PublicSettings(ctx *gin.Context) {
	settings, err := c.contentService.Settings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// --- payment configs ---

// PaymentConfigs returns all payment configs
func (c *ContentController) PaymentConfigs(ctx *gin.Context) {
	configs, err := c.contentService.PaymentConfigs(ctx, "", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, configs)
}

// CreatePaymentConfig adds a payment config
func (c *ContentController) CreatePaymentConfig(ctx *gin.Context) {
	var req dto.PaymentConfigRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	config, err := c.contentService.CreatePaymentConfig(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, config)
}

// UpdatePaymentConfig replaces a payment config
func (c *ContentController) UpdatePaymentConfig(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PaymentConfigRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	config, err := c.contentService.UpdatePaymentConfig(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, config)
}

// DeletePaymentConfig removes a payment config
func (c *ContentController) DeletePaymentConfig(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeletePaymentConfig(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Payment config deleted"})
}

// PublicPaymentConfigs returns active payment configs of one type
func (c *ContentController) PublicPaymentConfigs(ctx *gin.Context) {
	configs, err := c.contentService.PaymentConfigs(ctx, ctx.Param("type"), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, configs)
}

// --- content sections ---

// ContentSections returns all content blocks
func (c *ContentController) ContentSections(ctx *gin.Context) {
	sections, err := c.contentService.ContentSections(ctx, ctx.Query("sectionKey"), false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sections)
}

// CreateContentSection adds a content block
func (c *ContentController) CreateContentSection(ctx *gin.Context) {
	var req dto.ContentSectionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.contentService.CreateContentSection(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// UpdateContentSection replaces a content block
func (c *ContentController) UpdateContentSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ContentSectionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	section, err := c.contentService.UpdateContentSection(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// DeleteContentSection removes a content block
func (c *ContentController) DeleteContentSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeleteContentSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Content section deleted"})
}

// PublicContent returns the active content blocks of one section
func (c *ContentController) PublicContent(ctx *gin.Context) {
	sections, err := c.contentService.ContentSections(ctx, ctx.Param("sectionKey"), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sections)
}

// --- fee structures ---

// FeeStructures returns all fee tiers
func (c *ContentController) FeeStructures(ctx *gin.Context) {
	fees, err := c.contentService.FeeStructures(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// CreateFeeStructure adds a fee tier
func (c *ContentController) CreateFeeStructure(ctx *gin.Context) {
	var req dto.FeeStructureRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.contentService.CreateFeeStructure(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, fee)
}

// UpdateFeeStructure replaces a fee tier
func (c *ContentController) UpdateFeeStructure(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.FeeStructureRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.contentService.UpdateFeeStructure(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// DeleteFeeStructure removes a fee tier
func (c *ContentController) DeleteFeeStructure(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeleteFeeStructure(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Fee structure deleted"})
}

// PublicFeeStructures returns the active fee tiers
func (c *ContentController) PublicFeeStructures(ctx *gin.Context) {
	fees, err := c.contentService.FeeStructures(ctx, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// --- pages ---

// Pages returns all CMS pages
func (c *ContentController) Pages(ctx *gin.Context) {
	pages, err := c.contentService.Pages(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, pages)
}

// CreatePage adds a page
func (c *ContentController) CreatePage(ctx *gin.Context) {
	var req dto.PageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	page, err := c.contentService.CreatePage(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, page)
}

// UpdatePage replaces a page
func (c *ContentController) UpdatePage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	page, err := c.contentService.UpdatePage(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// DeletePage removes a page
func (c *ContentController) DeletePage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeletePage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Page deleted"})
}

// PublicPage returns one published page by slug
func (c *ContentController) PublicPage(ctx *gin.Context) {
	page, err := c.contentService.PageBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}
