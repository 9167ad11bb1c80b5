package repositories

import (
	"context"

	"cafe-storefront/config"
	"cafe-storefront/models"
)

type PaymentMethodRepository struct{}

func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{}
}

func (r *PaymentMethodRepository) GetActiveMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	query := `
		SELECT id, name, COALESCE(account_number, ''), COALESCE(account_name, ''), COALESCE(qr_code_url, ''), active, sort_order
		FROM payment_methods
		WHERE active = true
		ORDER BY sort_order ASC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL, &m.Active, &m.SortOrder); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
