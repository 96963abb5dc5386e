package services

import (
	"context"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
)

// ContentStore is the persistence surface for menu items, content sections
// and pages.
type ContentStore interface {
	GetMenuItems(ctx context.Context, activeOnly bool) ([]*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error
	GetContentSections(ctx context.Context, sectionKey string, activeOnly bool) ([]*models.ContentSection, error)
	CreateContentSection(ctx context.Context, section *models.ContentSection) error
	UpdateContentSection(ctx context.Context, section *models.ContentSection) error
	DeleteContentSection(ctx context.Context, id int64) error
	GetPages(ctx context.Context, publishedOnly bool) ([]*models.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	CreatePage(ctx context.Context, page *models.Page) error
	UpdatePage(ctx context.Context, page *models.Page) error
	DeletePage(ctx context.Context, id int64) error
}

// SettingsStore is the persistence surface for admin settings, payment
// configs and fee structures.
type SettingsStore interface {
	GetSettings(ctx context.Context) ([]*models.AdminSetting, error)
	GetSettingByKey(ctx context.Context, key string) (*models.AdminSetting, error)
	UpdateSettingValue(ctx context.Context, key, value string) error
	UpsertSetting(ctx context.Context, setting *models.AdminSetting) error
	GetPaymentConfigs(ctx context.Context, configType string, activeOnly bool) ([]*models.PaymentConfig, error)
	CreatePaymentConfig(ctx context.Context, config *models.PaymentConfig) error
	UpdatePaymentConfig(ctx context.Context, config *models.PaymentConfig) error
	DeletePaymentConfig(ctx context.Context, id int64) error
	GetFeeStructures(ctx context.Context, activeOnly bool) ([]*models.FeeStructure, error)
	CreateFeeStructure(ctx context.Context, fee *models.FeeStructure) error
	UpdateFeeStructure(ctx context.Context, fee *models.FeeStructure) error
	DeleteFeeStructure(ctx context.Context, id int64) error
}

// ContentService handles site content, navigation, settings and the
// published fee and payment information.
type ContentService struct {
	content  ContentStore
	settings SettingsStore
}

// NewContentService creates a new ContentService
func NewContentService(content ContentStore, settings SettingsStore) *ContentService {
	return &ContentService{
		content:  content,
		settings: settings,
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

// --- menu items ---

// MenuItems lists navigation entries; activeOnly hides disabled ones
func (s *ContentService) MenuItems(ctx context.Context, activeOnly bool) ([]*models.MenuItem, error) {
	return s.content.GetMenuItems(ctx, activeOnly)
}

// CreateMenuItem adds a navigation entry
func (s *ContentService) CreateMenuItem(ctx context.Context, req dto.MenuItemRequest) (*models.MenuItem, error) {
	group := req.Group
	if group == "" {
		group = "main"
	}

	item := &models.MenuItem{
		Title:      req.Title,
		TitleHindi: req.TitleHindi,
		Path:       req.Path,
		IconKey:    req.IconKey,
		Order:      req.Order,
		IsActive:   boolOr(req.IsActive, true),
		Group:      group,
	}
	if err := s.content.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateMenuItem replaces a navigation entry
func (s *ContentService) UpdateMenuItem(ctx context.Context, id int64, req dto.MenuItemRequest) (*models.MenuItem, error) {
	group := req.Group
	if group == "" {
		group = "main"
	}

	item := &models.MenuItem{
		ID:         id,
		Title:      req.Title,
		TitleHindi: req.TitleHindi,
		Path:       req.Path,
		IconKey:    req.IconKey,
		Order:      req.Order,
		IsActive:   boolOr(req.IsActive, true),
		Group:      group,
	}
	if err := s.content.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteMenuItem removes a navigation entry
func (s *ContentService) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.content.DeleteMenuItem(ctx, id)
}

// --- settings ---

// Settings lists all admin settings
func (s *ContentService) Settings(ctx context.Context) ([]*models.AdminSetting, error) {
	return s.settings.GetSettings(ctx)
}

// Setting retrieves one setting by key
func (s *ContentService) Setting(ctx context.Context, key string) (*models.AdminSetting, error) {
	return s.settings.GetSettingByKey(ctx, key)
}

// UpdateSetting changes a setting's value and returns the fresh record
func (s *ContentService) UpdateSetting(ctx context.Context, key string, req dto.UpdateSettingRequest) (*models.AdminSetting, error) {
	if err := s.settings.UpdateSettingValue(ctx, key, req.Value); err != nil {
		return nil, err
	}
	return s.settings.GetSettingByKey(ctx, key)
}

// CreateSetting registers a new setting definition
func (s *ContentService) CreateSetting(ctx context.Context, setting *models.AdminSetting) error {
	return s.settings.UpsertSetting(ctx, setting)
}

// --- payment configs ---

// PaymentConfigs lists payment configs, optionally by type and active flag
func (s *ContentService) PaymentConfigs(ctx context.Context, configType string, activeOnly bool) ([]*models.PaymentConfig, error) {
	return s.settings.GetPaymentConfigs(ctx, configType, activeOnly)
}

// CreatePaymentConfig adds a payment config
func (s *ContentService) CreatePaymentConfig(ctx context.Context, req dto.PaymentConfigRequest) (*models.PaymentConfig, error) {
	config := &models.PaymentConfig{
		Type:              req.Type,
		Name:              req.Name,
		NameHindi:         req.NameHindi,
		QRCodeURL:         req.QRCodeURL,
		UPIID:             req.UPIID,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IFSCCode:          req.IFSCCode,
		AccountHolderName: req.AccountHolderName,
		IsActive:          boolOr(req.IsActive, true),
		Order:             req.Order,
	}
	if err := s.settings.CreatePaymentConfig(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

// UpdatePaymentConfig replaces a payment config
func (s *ContentService) UpdatePaymentConfig(ctx context.Context, id int64, req dto.PaymentConfigRequest) (*models.PaymentConfig, error) {
	config := &models.PaymentConfig{
		ID:                id,
		Type:              req.Type,
		Name:              req.Name,
		NameHindi:         req.NameHindi,
		QRCodeURL:         req.QRCodeURL,
		UPIID:             req.UPIID,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IFSCCode:          req.IFSCCode,
		AccountHolderName: req.AccountHolderName,
		IsActive:          boolOr(req.IsActive, true),
		Order:             req.Order,
	}
	if err := s.settings.UpdatePaymentConfig(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

// DeletePaymentConfig removes a payment config
func (s *ContentService) DeletePaymentConfig(ctx context.Context, id int64) error {
	return s.settings.DeletePaymentConfig(ctx, id)
}

// --- content sections ---

// ContentSections lists content blocks, optionally by key and active flag
func (s *ContentService) ContentSections(ctx context.Context, sectionKey string, activeOnly bool) ([]*models.ContentSection, error) {
	return s.content.GetContentSections(ctx, sectionKey, activeOnly)
}

// CreateContentSection adds a content block
func (s *ContentService) CreateContentSection(ctx context.Context, req dto.ContentSectionRequest) (*models.ContentSection, error) {
	section := &models.ContentSection{
		SectionKey:   req.SectionKey,
		Title:        req.Title,
		TitleHindi:   req.TitleHindi,
		Content:      req.Content,
		ContentHindi: req.ContentHindi,
		ImageURLs:    req.ImageURLs,
		IsActive:     boolOr(req.IsActive, true),
		Order:        req.Order,
		Metadata:     req.Metadata,
	}
	if err := s.content.CreateContentSection(ctx, section); err != nil {
		return nil, err
	}

	return section, nil
}

// UpdateContentSection replaces a content block
func (s *ContentService) UpdateContentSection(ctx context.Context, id int64, req dto.ContentSectionRequest) (*models.ContentSection, error) {
	section := &models.ContentSection{
		ID:           id,
		SectionKey:   req.SectionKey,
		Title:        req.Title,
		TitleHindi:   req.TitleHindi,
		Content:      req.Content,
		ContentHindi: req.ContentHindi,
		ImageURLs:    req.ImageURLs,
		IsActive:     boolOr(req.IsActive, true),
		Order:        req.Order,
		Metadata:     req.Metadata,
	}
	if err := s.content.UpdateContentSection(ctx, section); err != nil {
		return nil, err
	}

	return section, nil
}

// DeleteContentSection removes a content block
func (s *ContentService) DeleteContentSection(ctx context.Context, id int64) error {
	return s.content.DeleteContentSection(ctx, id)
}

// --- fee structures ---

// FeeStructures lists fee tiers, optionally only active ones
func (s *ContentService) FeeStructures(ctx context.Context, activeOnly bool) ([]*models.FeeStructure, error) {
	return s.settings.GetFeeStructures(ctx, activeOnly)
}

// CreateFeeStructure adds a fee tier
func (s *ContentService) CreateFeeStructure(ctx context.Context, req dto.FeeStructureRequest) (*models.FeeStructure, error) {
	fee := &models.FeeStructure{
		Name:        req.Name,
		NameHindi:   req.NameHindi,
		Level:       req.Level,
		Amount:      req.Amount,
		Description: req.Description,
		IsActive:    boolOr(req.IsActive, true),
	}
	if err := s.settings.CreateFeeStructure(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// UpdateFeeStructure replaces a fee tier
func (s *ContentService) UpdateFeeStructure(ctx context.Context, id int64, req dto.FeeStructureRequest) (*models.FeeStructure, error) {
	fee := &models.FeeStructure{
		ID:          id,
		Name:        req.Name,
		NameHindi:   req.NameHindi,
		Level:       req.Level,
		Amount:      req.Amount,
		Description: req.Description,
		IsActive:    boolOr(req.IsActive, true),
	}
	if err := s.settings.UpdateFeeStructure(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// DeleteFeeStructure removes a fee tier
func (s *ContentService) DeleteFeeStructure(ctx context.Context, id int64) error {
	return s.settings.DeleteFeeStructure(ctx, id)
}

// --- pages ---

// Pages lists pages, optionally only published ones
func (s *ContentService) Pages(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	return s.content.GetPages(ctx, publishedOnly)
}

// PageBySlug retrieves one published page
func (s *ContentService) PageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return s.content.GetPageBySlug(ctx, slug)
}

// CreatePage adds a page
func (s *ContentService) CreatePage(ctx context.Context, req dto.PageRequest) (*models.Page, error) {
	page := &models.Page{
		Slug:            req.Slug,
		Title:           req.Title,
		TitleHindi:      req.TitleHindi,
		Content:         req.Content,
		ContentHindi:    req.ContentHindi,
		MetaDescription: req.MetaDescription,
		IsPublished:     boolOr(req.IsPublished, true),
		Order:           req.Order,
	}
	if err := s.content.CreatePage(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

// UpdatePage replaces a page
func (s *ContentService) UpdatePage(ctx context.Context, id int64, req dto.PageRequest) (*models.Page, error) {
	page := &models.Page{
		ID:              id,
		Slug:            req.Slug,
		Title:           req.Title,
		TitleHindi:      req.TitleHindi,
		Content:         req.Content,
		ContentHindi:    req.ContentHindi,
		MetaDescription: req.MetaDescription,
		IsPublished:     boolOr(req.IsPublished, true),
		Order:           req.Order,
	}
	if err := s.content.UpdatePage(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

// DeletePage removes a page
func (s *ContentService) DeletePage(ctx context.Context, id int64) error {
	return s.content.DeletePage(ctx, id)
}
