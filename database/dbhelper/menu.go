package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/models"
)

const menuItemColumns = `id, name, description, price, category, image, is_available, created_at`

func scanMenuItem(row *sql.Row) (models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Image, &item.IsAvailable, &item.CreatedAt)
	return item, err
}

func GetAvailableMenuItems() ([]models.MenuItem, error) {
	rows, err := database.QRCafe.Query(`
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE is_available = TRUE AND archived_at IS NULL
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

func GetMenuItemsByCategory(category string) ([]models.MenuItem, error) {
	rows, err := database.QRCafe.Query(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE category = $1 AND is_available = TRUE AND archived_at IS NULL
		ORDER BY name`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

func GetMenuItemByID(id uuid.UUID) (models.MenuItem, error) {
	return scanMenuItem(database.QRCafe.QueryRow(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = $1 AND archived_at IS NULL`, id))
}

func CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	err := database.QRCafe.QueryRow(`
		INSERT INTO menu_items (name, description, price, category, image, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
	return item, err
}

func UpdateMenuItem(item models.MenuItem) error {
	result, err := database.QRCafe.Exec(`
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5, image = $6, is_available = $7
		WHERE id = $1 AND archived_at IS NULL`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image, item.IsAvailable)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// DeleteMenuItem archives the item rather than deleting the row, so order
// lines referencing it keep their price snapshot and join target.
func DeleteMenuItem(id uuid.UUID) error {
	result, err := database.QRCafe.Exec(`
		UPDATE menu_items
		SET archived_at = now()
		WHERE id = $1 AND archived_at IS NULL`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func collectMenuItems(rows *sql.Rows) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Image, &item.IsAvailable, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func requireRowsAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
