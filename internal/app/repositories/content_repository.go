package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
)

// ContentRepository handles database operations for menu items, content
// sections and CMS pages.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

// --- menu items ---

const menuItemColumns = `id, title, title_hindi, path, icon_key, sort_order,
		is_active, menu_group, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.TitleHindi,
		&item.Path,
		&item.IconKey,
		&item.Order,
		&item.IsActive,
		&item.Group,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetMenuItems retrieves menu items in display order, optionally only
// active ones.
func (r *ContentRepository) GetMenuItems(ctx context.Context, activeOnly bool) ([]*models.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1 = FALSE OR is_active)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateMenuItem inserts a menu item
func (r *ContentRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (title, title_hindi, path, icon_key, sort_order, is_active, menu_group)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		item.Title, item.TitleHindi, item.Path, item.IconKey,
		item.Order, item.IsActive, item.Group,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating menu item: %w", err)
	}

	return nil
}

// UpdateMenuItem replaces a menu item's fields
func (r *ContentRepository) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET title = $2, title_hindi = $3, path = $4, icon_key = $5,
			sort_order = $6, is_active = $7, menu_group = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.TitleHindi, item.Path, item.IconKey,
		item.Order, item.IsActive, item.Group,
	)
	if err != nil {
		return fmt.Errorf("error updating menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// DeleteMenuItem removes a menu item
func (r *ContentRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// --- content sections ---

const contentSectionColumns = `id, section_key, title, title_hindi, content, content_hindi,
		image_urls, is_active, sort_order, metadata, created_at, updated_at`

func scanContentSection(row pgx.Row) (*models.ContentSection, error) {
	var section models.ContentSection
	err := row.Scan(
		&section.ID,
		&section.SectionKey,
		&section.Title,
		&section.TitleHindi,
		&section.Content,
		&section.ContentHindi,
		&section.ImageURLs,
		&section.IsActive,
		&section.Order,
		&section.Metadata,
		&section.CreatedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetContentSections retrieves content blocks, optionally filtered by
// section key and active flag, in display order.
func (r *ContentRepository) GetContentSections(ctx context.Context, sectionKey string, activeOnly bool) ([]*models.ContentSection, error) {
	query := `
		SELECT ` + contentSectionColumns + `
		FROM content_sections
		WHERE ($1 = '' OR section_key = $1) AND ($2 = FALSE OR is_active)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, sectionKey, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.ContentSection
	for rows.Next() {
		section, err := scanContentSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// CreateContentSection inserts a content block
func (r *ContentRepository) CreateContentSection(ctx context.Context, section *models.ContentSection) error {
	query := `
		INSERT INTO content_sections (
			section_key, title, title_hindi, content, content_hindi,
			image_urls, is_active, sort_order, metadata
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		section.SectionKey, section.Title, section.TitleHindi,
		section.Content, section.ContentHindi, section.ImageURLs,
		section.IsActive, section.Order, section.Metadata,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating content section: %w", err)
	}

	return nil
}

// UpdateContentSection replaces a content block's fields
func (r *ContentRepository) UpdateContentSection(ctx context.Context, section *models.ContentSection) error {
	query := `
		UPDATE content_sections
		SET section_key = $2, title = $3, title_hindi = $4, content = $5,
			content_hindi = $6, image_urls = $7, is_active = $8, sort_order = $9,
			metadata = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		section.ID, section.SectionKey, section.Title, section.TitleHindi,
		section.Content, section.ContentHindi, section.ImageURLs,
		section.IsActive, section.Order, section.Metadata,
	)
	if err != nil {
		return fmt.Errorf("error updating content section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPageNotFound
	}

	return nil
}

// DeleteContentSection removes a content block
func (r *ContentRepository) DeleteContentSection(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM content_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting content section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPageNotFound
	}

	return nil
}

// --- pages ---

const pageColumns = `id, slug, title, title_hindi, content, content_hindi,
		meta_description, is_published, sort_order, created_at, updated_at`

func scanPage(row pgx.Row) (*models.Page, error) {
	var page models.Page
	err := row.Scan(
		&page.ID,
		&page.Slug,
		&page.Title,
		&page.TitleHindi,
		&page.Content,
		&page.ContentHindi,
		&page.MetaDescription,
		&page.IsPublished,
		&page.Order,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPages retrieves pages, optionally only published ones
func (r *ContentRepository) GetPages(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	query := `
		SELECT ` + pageColumns + `
		FROM pages
		WHERE ($1 = FALSE OR is_published)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}

// GetPageBySlug retrieves a published page by slug
func (r *ContentRepository) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1 AND is_published`

	page, err := scanPage(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, fmt.Errorf("error retrieving page: %w", err)
	}

	return page, nil
}

// CreatePage inserts a page
func (r *ContentRepository) CreatePage(ctx context.Context, page *models.Page) error {
	query := `
		INSERT INTO pages (
			slug, title, title_hindi, content, content_hindi,
			meta_description, is_published, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		page.Slug, page.Title, page.TitleHindi, page.Content,
		page.ContentHindi, page.MetaDescription, page.IsPublished, page.Order,
	).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating page: %w", err)
	}

	return nil
}

// UpdatePage replaces a page's fields
func (r *ContentRepository) UpdatePage(ctx context.Context, page *models.Page) error {
	query := `
		UPDATE pages
		SET slug = $2, title = $3, title_hindi = $4, content = $5,
			content_hindi = $6, meta_description = $7, is_published = $8,
			sort_order = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		page.ID, page.Slug, page.Title, page.TitleHindi, page.Content,
		page.ContentHindi, page.MetaDescription, page.IsPublished, page.Order,
	)
	if err != nil {
		return fmt.Errorf("error updating page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPageNotFound
	}

	return nil
}

// DeletePage removes a page
func (r *ContentRepository) DeletePage(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPageNotFound
	}

	return nil
}
