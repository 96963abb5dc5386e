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

// SettingsRepository handles database operations for admin settings,
// payment configs and fee structures.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// --- admin settings ---

const adminSettingColumns = `id, key, value, label, label_hindi, description,
		type, category, created_at, updated_at`

func scanAdminSetting(row pgx.Row) (*models.AdminSetting, error) {
	var setting models.AdminSetting
	err := row.Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Label,
		&setting.LabelHindi,
		&setting.Description,
		&setting.Type,
		&setting.Category,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetSettings retrieves all admin settings grouped by category order
func (r *SettingsRepository) GetSettings(ctx context.Context) ([]*models.AdminSetting, error) {
	query := `SELECT ` + adminSettingColumns + ` FROM admin_settings ORDER BY category, key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.AdminSetting
	for rows.Next() {
		setting, err := scanAdminSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// GetSettingByKey retrieves one admin setting
func (r *SettingsRepository) GetSettingByKey(ctx context.Context, key string) (*models.AdminSetting, error) {
	query := `SELECT ` + adminSettingColumns + ` FROM admin_settings WHERE key = $1`

	setting, err := scanAdminSetting(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error retrieving setting: %w", err)
	}

	return setting, nil
}

// UpdateSettingValue changes one setting's stored value
func (r *SettingsRepository) UpdateSettingValue(ctx context.Context, key, value string) error {
	query := `UPDATE admin_settings SET value = $2, updated_at = NOW() WHERE key = $1`

	tag, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("error updating setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// UpsertSetting creates or refreshes a setting definition. Used by seeding.
func (r *SettingsRepository) UpsertSetting(ctx context.Context, setting *models.AdminSetting) error {
	query := `
		INSERT INTO admin_settings (key, value, label, label_hindi, description, type, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (key) DO UPDATE
		SET label = EXCLUDED.label, label_hindi = EXCLUDED.label_hindi,
			description = EXCLUDED.description, type = EXCLUDED.type,
			category = EXCLUDED.category, updated_at = NOW()
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		setting.Key, setting.Value, setting.Label, setting.LabelHindi,
		setting.Description, setting.Type, setting.Category,
	).Scan(&setting.ID)
	if err != nil {
		return fmt.Errorf("error upserting setting: %w", err)
	}

	return nil
}

// --- payment configs ---

const paymentConfigColumns = `id, type, name, name_hindi, qr_code_url, upi_id, bank_name,
		account_number, ifsc_code, account_holder_name, is_active, sort_order,
		created_at, updated_at`

func scanPaymentConfig(row pgx.Row) (*models.PaymentConfig, error) {
	var config models.PaymentConfig
	err := row.Scan(
		&config.ID,
		&config.Type,
		&config.Name,
		&config.NameHindi,
		&config.QRCodeURL,
		&config.UPIID,
		&config.BankName,
		&config.AccountNumber,
		&config.IFSCCode,
		&config.AccountHolderName,
		&config.IsActive,
		&config.Order,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetPaymentConfigs retrieves payment configs, optionally filtered by type
// and active flag, in display order.
func (r *SettingsRepository) GetPaymentConfigs(ctx context.Context, configType string, activeOnly bool) ([]*models.PaymentConfig, error) {
	query := `
		SELECT ` + paymentConfigColumns + `
		FROM payment_configs
		WHERE ($1 = '' OR type = $1) AND ($2 = FALSE OR is_active)
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, configType, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.PaymentConfig
	for rows.Next() {
		config, err := scanPaymentConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return configs, nil
}

// CreatePaymentConfig inserts a payment config
func (r *SettingsRepository) CreatePaymentConfig(ctx context.Context, config *models.PaymentConfig) error {
	query := `
		INSERT INTO payment_configs (
			type, name, name_hindi, qr_code_url, upi_id, bank_name,
			account_number, ifsc_code, account_holder_name, is_active, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		config.Type, config.Name, config.NameHindi, config.QRCodeURL,
		config.UPIID, config.BankName, config.AccountNumber, config.IFSCCode,
		config.AccountHolderName, config.IsActive, config.Order,
	).Scan(&config.ID, &config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating payment config: %w", err)
	}

	return nil
}

// UpdatePaymentConfig replaces a payment config's fields
func (r *SettingsRepository) UpdatePaymentConfig(ctx context.Context, config *models.PaymentConfig) error {
	query := `
		UPDATE payment_configs
		SET type = $2, name = $3, name_hindi = $4, qr_code_url = $5, upi_id = $6,
			bank_name = $7, account_number = $8, ifsc_code = $9,
			account_holder_name = $10, is_active = $11, sort_order = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		config.ID, config.Type, config.Name, config.NameHindi, config.QRCodeURL,
		config.UPIID, config.BankName, config.AccountNumber, config.IFSCCode,
		config.AccountHolderName, config.IsActive, config.Order,
	)
	if err != nil {
		return fmt.Errorf("error updating payment config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// DeletePaymentConfig removes a payment config
func (r *SettingsRepository) DeletePaymentConfig(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting payment config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// --- fee structures ---

const feeStructureColumns = `id, name, name_hindi, level, amount, description,
		is_active, created_at, updated_at`

func scanFeeStructure(row pgx.Row) (*models.FeeStructure, error) {
	var fee models.FeeStructure
	err := row.Scan(
		&fee.ID,
		&fee.Name,
		&fee.NameHindi,
		&fee.Level,
		&fee.Amount,
		&fee.Description,
		&fee.IsActive,
		&fee.CreatedAt,
		&fee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// GetFeeStructures retrieves fee tiers, optionally only active ones
func (r *SettingsRepository) GetFeeStructures(ctx context.Context, activeOnly bool) ([]*models.FeeStructure, error) {
	query := `
		SELECT ` + feeStructureColumns + `
		FROM fee_structures
		WHERE ($1 = FALSE OR is_active)
		ORDER BY amount
	`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.FeeStructure
	for rows.Next() {
		fee, err := scanFeeStructure(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// CreateFeeStructure inserts a fee tier
func (r *SettingsRepository) CreateFeeStructure(ctx context.Context, fee *models.FeeStructure) error {
	query := `
		INSERT INTO fee_structures (name, name_hindi, level, amount, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.Name, fee.NameHindi, fee.Level, fee.Amount, fee.Description, fee.IsActive,
	).Scan(&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating fee structure: %w", err)
	}

	return nil
}

// UpdateFeeStructure replaces a fee tier's fields
func (r *SettingsRepository) UpdateFeeStructure(ctx context.Context, fee *models.FeeStructure) error {
	query := `
		UPDATE fee_structures
		SET name = $2, name_hindi = $3, level = $4, amount = $5,
			description = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		fee.ID, fee.Name, fee.NameHindi, fee.Level, fee.Amount,
		fee.Description, fee.IsActive,
	)
	if err != nil {
		return fmt.Errorf("error updating fee structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// DeleteFeeStructure removes a fee tier
func (r *SettingsRepository) DeleteFeeStructure(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fee_structures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}

// FeeStructureCount returns the number of fee tiers. Used by seeding.
func (r *SettingsRepository) FeeStructureCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM fee_structures`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting fee structures: %w", err)
	}

	return count, nil
}
