package repositories

import (
	"context"

	"cafe-storefront/config"
	"cafe-storefront/models"

	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) GetActiveCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, COALESCE(icon, ''), sort_order, active, created_at, updated_at
		FROM categories
		WHERE active = true
		ORDER BY sort_order ASC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.SortOrder, &cat.Active, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CatalogRepository) GetActiveMenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), base_price, category, COALESCE(image_url, ''), sort_order, active, created_at, updated_at
		FROM menu_items
		WHERE active = true
	`
	args := []interface{}{}
	if category != "" {
		query += " AND category = $1"
		args = append(args, category)
	}
	query += " ORDER BY sort_order ASC, name ASC"

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice, &item.Category, &item.ImageURL, &item.SortOrder, &item.Active, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachChoices(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), base_price, category, COALESCE(image_url, ''), sort_order, active, created_at, updated_at
		FROM menu_items
		WHERE id = $1 AND active = true
	`

	var item models.MenuItem
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.BasePrice, &item.Category,
		&item.ImageURL, &item.SortOrder, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{item}
	if err := r.attachChoices(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// attachChoices loads variations and add-ons for the given items in two
// queries and groups them in memory.
func (r *CatalogRepository) attachChoices(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	index := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
		index[items[i].ID] = &items[i]
	}

	rows, err := config.DB.Query(ctx,
		`SELECT item_id, id, name, price FROM variations WHERE item_id = ANY($1) ORDER BY sort_order ASC`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		var v models.Variation
		if err := rows.Scan(&itemID, &v.ID, &v.Name, &v.Price); err != nil {
			return err
		}
		if item, ok := index[itemID]; ok {
			item.Variations = append(item.Variations, v)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	addOnRows, err := config.DB.Query(ctx,
		`SELECT item_id, id, name, price FROM add_ons WHERE item_id = ANY($1) ORDER BY sort_order ASC`, ids)
	if err != nil {
		return err
	}
	defer addOnRows.Close()

	for addOnRows.Next() {
		var itemID string
		var a models.AddOn
		if err := addOnRows.Scan(&itemID, &a.ID, &a.Name, &a.Price); err != nil {
			return err
		}
		if item, ok := index[itemID]; ok {
			item.AddOns = append(item.AddOns, a)
		}
	}
	return addOnRows.Err()
}
