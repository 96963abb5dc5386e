package models

import "time"

// MenuItem defines an entry of the admin navigation menu.
type MenuItem struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	TitleHindi *string   `json:"titleHindi,omitempty" db:"title_hindi"`
	Path       string    `json:"path" db:"path"`
	IconKey    string    `json:"iconKey" db:"icon_key"`
	Order      int       `json:"order" db:"sort_order"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	Group      string    `json:"group" db:"menu_group"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// AdminSetting is a typed key/value toggle editable from the admin panel.
type AdminSetting struct {
	ID          int64       `json:"id" db:"id"`
	Key         string      `json:"key" db:"key"`
	Value       string      `json:"value" db:"value"`
	Label       string      `json:"label" db:"label"`
	LabelHindi  *string     `json:"labelHindi,omitempty" db:"label_hindi"`
	Description *string     `json:"description,omitempty" db:"description"`
	Type        SettingType `json:"type" db:"type"`
	Category    string      `json:"category" db:"category"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// PaymentConfig holds the bank/UPI details shown on donation and fee pages.
type PaymentConfig struct {
	ID                int64             `json:"id" db:"id"`
	Type              PaymentConfigType `json:"type" db:"type"`
	Name              string            `json:"name" db:"name"`
	NameHindi         *string           `json:"nameHindi,omitempty" db:"name_hindi"`
	QRCodeURL         *string           `json:"qrCodeUrl,omitempty" db:"qr_code_url"`
	UPIID             *string           `json:"upiId,omitempty" db:"upi_id"`
	BankName          *string           `json:"bankName,omitempty" db:"bank_name"`
	AccountNumber     *string           `json:"accountNumber,omitempty" db:"account_number"`
	IFSCCode          *string           `json:"ifscCode,omitempty" db:"ifsc_code"`
	AccountHolderName *string           `json:"accountHolderName,omitempty" db:"account_holder_name"`
	IsActive          bool              `json:"isActive" db:"is_active"`
	Order             int               `json:"order" db:"sort_order"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`
}

// ContentSection is a block of bilingual site content keyed by section.
type ContentSection struct {
	ID           int64      `json:"id" db:"id"`
	SectionKey   SectionKey `json:"sectionKey" db:"section_key"`
	Title        string     `json:"title" db:"title"`
	TitleHindi   *string    `json:"titleHindi,omitempty" db:"title_hindi"`
	Content      string     `json:"content" db:"content"`
	ContentHindi *string    `json:"contentHindi,omitempty" db:"content_hindi"`
	ImageURLs    []string   `json:"imageUrls,omitempty" db:"image_urls"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	Order        int        `json:"order" db:"sort_order"`
	Metadata     *string    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// FeeStructure is a published registration fee tier.
type FeeStructure struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	NameHindi   *string   `json:"nameHindi,omitempty" db:"name_hindi"`
	Level       FeeLevel  `json:"level" db:"level"`
	Amount      int       `json:"amount" db:"amount"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Page is a standalone CMS page addressed by slug.
type Page struct {
	ID              int64     `json:"id" db:"id"`
	Slug            string    `json:"slug" db:"slug"`
	Title           string    `json:"title" db:"title"`
	TitleHindi      *string   `json:"titleHindi,omitempty" db:"title_hindi"`
	Content         string    `json:"content" db:"content"`
	ContentHindi    *string   `json:"contentHindi,omitempty" db:"content_hindi"`
	MetaDescription *string   `json:"metaDescription,omitempty" db:"meta_description"`
	IsPublished     bool      `json:"isPublished" db:"is_published"`
	Order           int       `json:"order" db:"sort_order"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
