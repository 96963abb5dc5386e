package dto

import "github.com/mwss/sevaportal/internal/app/models"

// MenuItemRequest creates or replaces a navigation menu item.
type MenuItemRequest struct {
	Title      string  `json:"title" binding:"required"`
	TitleHindi *string `json:"titleHindi,omitempty"`
	Path       string  `json:"path" binding:"required"`
	IconKey    string  `json:"iconKey,omitempty"`
	Order      int     `json:"order"`
	IsActive   *bool   `json:"isActive,omitempty"`
	Group      string  `json:"group,omitempty"`
}

// UpdateSettingRequest changes an admin setting's stored value.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// PaymentConfigRequest creates or updates payment details for a page.
type PaymentConfigRequest struct {
	Type              models.PaymentConfigType `json:"type" binding:"required"`
	Name              string                   `json:"name" binding:"required"`
	NameHindi         *string                  `json:"nameHindi,omitempty"`
	QRCodeURL         *string                  `json:"qrCodeUrl,omitempty"`
	UPIID             *string                  `json:"upiId,omitempty"`
	BankName          *string                  `json:"bankName,omitempty"`
	AccountNumber     *string                  `json:"accountNumber,omitempty"`
	IFSCCode          *string                  `json:"ifscCode,omitempty"`
	AccountHolderName *string                  `json:"accountHolderName,omitempty"`
	IsActive          *bool                    `json:"isActive,omitempty"`
	Order             int                      `json:"order"`
}

// ContentSectionRequest creates or updates a bilingual content block.
type ContentSectionRequest struct {
	SectionKey   models.SectionKey `json:"sectionKey" binding:"required"`
	Title        string            `json:"title" binding:"required"`
	TitleHindi   *string           `json:"titleHindi,omitempty"`
	Content      string            `json:"content" binding:"required"`
	ContentHindi *string           `json:"contentHindi,omitempty"`
	ImageURLs    []string          `json:"imageUrls,omitempty"`
	IsActive     *bool             `json:"isActive,omitempty"`
	Order        int               `json:"order"`
	Metadata     *string           `json:"metadata,omitempty"`
}

// FeeStructureRequest creates or updates a published fee tier.
type FeeStructureRequest struct {
	Name        string          `json:"name" binding:"required"`
	NameHindi   *string         `json:"nameHindi,omitempty"`
	Level       models.FeeLevel `json:"level" binding:"required"`
	Amount      int             `json:"amount" binding:"required,min=1"`
	Description *string         `json:"description,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

// PageRequest creates or updates a CMS page.
type PageRequest struct {
	Slug            string  `json:"slug" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	TitleHindi      *string `json:"titleHindi,omitempty"`
	Content         string  `json:"content" binding:"required"`
	ContentHindi    *string `json:"contentHindi,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	IsPublished     *bool   `json:"isPublished,omitempty"`
	Order           int     `json:"order"`
}
