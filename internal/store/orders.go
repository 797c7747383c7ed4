package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
)

// OrderStore is the access layer for orders and their items.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id int64) (models.Order, error)
	List(ctx context.Context, page Page) ([]models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id int64) error
}

func NewOrderStore(db *database.DB) OrderStore {
	return &orderStore{db: db}
}

type orderStore struct {
	db *database.DB
}

// NewOrderNumber generates a human-facing order number for callers that
// leave it blank.
func NewOrderNumber() string {
	id := strings.ToUpper(uuid.NewString())
	return fmt.Sprintf("ORD-%s", id[:8])
}

var insertOrderQuery = `INSERT INTO orders
	(order_number, customer_id, order_type, status, total_amount, discount_amount, final_amount, notes, completed_at)
	VALUES (:order_number, :customer_id, :order_type, :status, :total_amount, :discount_amount, :final_amount, :notes, :completed_at)`

var insertOrderItemQuery = `INSERT INTO order_items
	(order_id, product_id, quantity, unit_price, total_price)
	VALUES (:order_id, :product_id, :quantity, :unit_price, :total_price)`

// Create inserts the order and any inline items inside one transaction,
// so a rejected item leaves no partial order behind.
func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	if err := validateOrder(o); err != nil {
		return err
	}
	for i := range o.Items {
		if err := validateOrderItem(&o.Items[i]); err != nil {
			return err
		}
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber()
	}

	var orderID int64
	err := s.transact(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, insertOrderQuery, o)
		if err != nil {
			return err
		}
		orderID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		for i := range o.Items {
			o.Items[i].OrderID = orderID
			res, err := tx.NamedExecContext(ctx, insertOrderItemQuery, o.Items[i])
			if err != nil {
				return err
			}
			if o.Items[i].ID, err = res.LastInsertId(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}

	created, err := s.Get(ctx, orderID)
	if err != nil {
		return err
	}
	*o = created
	return nil
}

func (s *orderStore) transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

var getOrderQuery = "SELECT * FROM orders WHERE id = ?"
var listOrderItemsByOrderQuery = "SELECT * FROM order_items WHERE order_id = ? ORDER BY id"

func (s *orderStore) Get(ctx context.Context, id int64) (models.Order, error) {
	var o models.Order
	if err := s.db.GetContext(ctx, &o, getOrderQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}
	if err := s.db.SelectContext(ctx, &o.Items, listOrderItemsByOrderQuery, id); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

var listOrdersQuery = "SELECT * FROM orders ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"

func (s *orderStore) List(ctx context.Context, page Page) ([]models.Order, error) {
	limit, offset := page.LimitOffset()

	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, listOrdersQuery, limit, offset)
	return orders, err
}

var updateOrderQuery = `UPDATE orders SET
	order_number = :order_number, customer_id = :customer_id, order_type = :order_type,
	status = :status, total_amount = :total_amount, discount_amount = :discount_amount,
	final_amount = :final_amount, notes = :notes, completed_at = :completed_at
	WHERE id = :id`

// Update writes every editable field. completed_at is stored only as
// supplied, never populated from a status change.
func (s *orderStore) Update(ctx context.Context, o *models.Order) error {
	if err := validateOrder(o); err != nil {
		return err
	}
	if _, err := s.Get(ctx, o.ID); err != nil {
		return err
	}

	if _, err := s.db.NamedExecContext(ctx, updateOrderQuery, o); err != nil {
		return translateError(err)
	}

	updated, err := s.Get(ctx, o.ID)
	if err != nil {
		return err
	}
	*o = updated
	return nil
}

var deleteOrderQuery = "DELETE FROM orders WHERE id = ?"

// Delete removes an order and cascades to its items.
func (s *orderStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteOrderQuery, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// OrderItemStore is the access layer for individual order lines.
type OrderItemStore interface {
	Create(ctx context.Context, i *models.OrderItem) error
	Get(ctx context.Context, id int64) (models.OrderItem, error)
	List(ctx context.Context, page Page) ([]models.OrderItem, error)
	Update(ctx context.Context, i *models.OrderItem) error
	Delete(ctx context.Context, id int64) error
}

func NewOrderItemStore(db *database.DB) OrderItemStore {
	return &orderItemStore{db: db}
}

type orderItemStore struct {
	db *database.DB
}

func (s *orderItemStore) Create(ctx context.Context, i *models.OrderItem) error {
	if err := validateOrderItem(i); err != nil {
		return err
	}
	if i.OrderID == 0 {
		return &ValidationError{Field: "order_id", Message: "is required"}
	}

	res, err := s.db.NamedExecContext(ctx, insertOrderItemQuery, i)
	if err != nil {
		return translateError(err)
	}
	i.ID, err = res.LastInsertId()
	return err
}

var getOrderItemQuery = "SELECT * FROM order_items WHERE id = ?"

func (s *orderItemStore) Get(ctx context.Context, id int64) (models.OrderItem, error) {
	var i models.OrderItem
	if err := s.db.GetContext(ctx, &i, getOrderItemQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OrderItem{}, ErrNotFound
		}
		return models.OrderItem{}, err
	}
	return i, nil
}

var listOrderItemsQuery = "SELECT * FROM order_items ORDER BY order_id, id LIMIT ? OFFSET ?"

func (s *orderItemStore) List(ctx context.Context, page Page) ([]models.OrderItem, error) {
	limit, offset := page.LimitOffset()

	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items, listOrderItemsQuery, limit, offset)
	return items, err
}

var updateOrderItemQuery = `UPDATE order_items SET
	order_id = :order_id, product_id = :product_id, quantity = :quantity,
	unit_price = :unit_price, total_price = :total_price
	WHERE id = :id`

func (s *orderItemStore) Update(ctx context.Context, i *models.OrderItem) error {
	if err := validateOrderItem(i); err != nil {
		return err
	}
	if _, err := s.Get(ctx, i.ID); err != nil {
		return err
	}

	_, err := s.db.NamedExecContext(ctx, updateOrderItemQuery, i)
	return translateError(err)
}

var deleteOrderItemQuery = "DELETE FROM order_items WHERE id = ?"

func (s *orderItemStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteOrderItemQuery, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
