package dbhelper

import (
	"time"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/models"
)

// GetOrdersBetween returns orders created inside the window, oldest first,
// with lines and menu detail attached. Bounds are inclusive; callers derive
// them in UTC.
func GetOrdersBetween(start, end time.Time) ([]models.Order, error) {
	rows, err := database.QRCafe.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return orders, AttachOrderItems(orders)
}

// GetNonCancelledOrdersBetween feeds revenue stats; cancelled orders count
// toward neither revenue nor order count.
func GetNonCancelledOrdersBetween(start, end time.Time) ([]models.Order, error) {
	rows, err := database.QRCafe.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at BETWEEN $1 AND $2 AND status <> $3
		ORDER BY created_at ASC`, start, end, models.StatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// GetOrderItemsBetween returns all lines of orders created in the window with
// their menu item detail, for the popular-items rollup.
func GetOrderItemsBetween(start, end time.Time) ([]models.OrderItem, error) {
	rows, err := database.QRCafe.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price,
		       m.id, m.name, m.description, m.price, m.category, m.image, m.is_available, m.created_at
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE o.created_at BETWEEN $1 AND $2
		ORDER BY oi.id`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var item models.OrderItem
		var menuItem models.MenuItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price,
			&menuItem.ID, &menuItem.Name, &menuItem.Description, &menuItem.Price,
			&menuItem.Category, &menuItem.Image, &menuItem.IsAvailable, &menuItem.CreatedAt); err != nil {
			return nil, err
		}
		item.MenuItem = &menuItem
		items = append(items, item)
	}
	return items, rows.Err()
}

func GetQRScansBetween(start, end time.Time) ([]models.QRCodeScan, error) {
	rows, err := database.QRCafe.Query(`
		SELECT id, table_number, scanned_at
		FROM qr_code_scans
		WHERE scanned_at BETWEEN $1 AND $2
		ORDER BY scanned_at DESC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]models.QRCodeScan, 0)
	for rows.Next() {
		var scan models.QRCodeScan
		if err := rows.Scan(&scan.ID, &scan.TableNumber, &scan.ScannedAt); err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

func RecordQRScan(tableNumber string) (models.QRCodeScan, error) {
	scan := models.QRCodeScan{TableNumber: tableNumber}
	err := database.QRCafe.QueryRow(`
		INSERT INTO qr_code_scans (table_number)
		VALUES ($1)
		RETURNING id, scanned_at`, tableNumber).
		Scan(&scan.ID, &scan.ScannedAt)
	return scan, err
}
