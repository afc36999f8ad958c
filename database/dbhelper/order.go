package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/models"
)

const orderColumns = `id, user_id, table_number, special_notes, total_amount, tax, service_charge, final_amount, status, created_at`

// CreateOrder inserts the order and all of its lines in the caller's
// transaction, so a failure on any line leaves nothing behind. The order's
// ID, timestamp and line IDs are filled in on success.
func CreateOrder(tx *sql.Tx, order *models.Order) error {
	err := tx.QueryRow(`
		INSERT INTO orders (user_id, table_number, special_notes, total_amount, tax, service_charge, final_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		order.UserID, order.TableNumber, order.SpecialNotes, order.TotalAmount,
		order.Tax, order.ServiceCharge, order.FinalAmount, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.Price).
			Scan(&item.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func GetOrderByID(id uuid.UUID) (models.Order, error) {
	var order models.Order
	err := database.QRCafe.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &order.TableNumber, &order.SpecialNotes,
			&order.TotalAmount, &order.Tax, &order.ServiceCharge, &order.FinalAmount,
			&order.Status, &order.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}

	orders := []models.Order{order}
	if err := AttachOrderItems(orders); err != nil {
		return models.Order{}, err
	}
	return orders[0], nil
}

func GetUserOrders(userID uuid.UUID) ([]models.Order, error) {
	rows, err := database.QRCafe.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
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

func GetActiveOrders() ([]models.Order, error) {
	statuses := make([]string, len(models.ActiveStatuses))
	for i, s := range models.ActiveStatuses {
		statuses[i] = string(s)
	}

	rows, err := database.QRCafe.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at DESC`, pq.Array(statuses))
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

// UpdateOrderStatus writes the new status and returns sql.ErrNoRows if the
// order does not exist. Transition legality beyond enum membership is not
// checked here.
func UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) error {
	result, err := database.QRCafe.Exec(`
		UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// AttachOrderItems eager-loads the lines and their menu item details for the
// given orders, in line insertion order.
func AttachOrderItems(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	byID := make(map[uuid.UUID]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID.String()
		byID[orders[i].ID] = i
		orders[i].Items = make([]models.OrderItem, 0)
	}

	rows, err := database.QRCafe.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price,
		       m.id, m.name, m.description, m.price, m.category, m.image, m.is_available, m.created_at
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var menuItem models.MenuItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price,
			&menuItem.ID, &menuItem.Name, &menuItem.Description, &menuItem.Price,
			&menuItem.Category, &menuItem.Image, &menuItem.IsAvailable, &menuItem.CreatedAt); err != nil {
			return err
		}
		item.MenuItem = &menuItem

		if i, ok := byID[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func collectOrders(rows *sql.Rows) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TableNumber, &order.SpecialNotes,
			&order.TotalAmount, &order.Tax, &order.ServiceCharge, &order.FinalAmount,
			&order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
