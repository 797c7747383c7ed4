package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
)

// CustomerStore is the access layer for customers and their loyalty
// programs.
type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	Get(ctx context.Context, id int64) (models.Customer, error)
	List(ctx context.Context, page Page) ([]models.Customer, error)
	ListByType(ctx context.Context, customerType string, page Page) ([]models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id int64) error
	OrderSummary(ctx context.Context, id int64) (models.CustomerOrderSummary, error)
	UpsertLoyalty(ctx context.Context, customerID int64, l *models.LoyaltyProgram) error
	DeleteLoyalty(ctx context.Context, customerID int64) error
}

func NewCustomerStore(db *database.DB) CustomerStore {
	return &customerStore{db: db}
}

type customerStore struct {
	db *database.DB
}

var insertCustomerQuery = `INSERT INTO customers
	(first_name, last_name, email, phone, customer_type, birth_date, address, is_active)
	VALUES (:first_name, :last_name, :email, :phone, :customer_type, :birth_date, :address, :is_active)`

func (s *customerStore) Create(ctx context.Context, c *models.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if err := s.checkEmailFree(ctx, c.Email, 0); err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, insertCustomerQuery, c)
	if err != nil {
		return translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	// Read back to pick up the server-set registration timestamp
	created, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	*c = created
	return nil
}

var getCustomerQuery = "SELECT * FROM customers WHERE id = ?"
var getLoyaltyQuery = "SELECT * FROM loyalty_programs WHERE customer_id = ?"

func (s *customerStore) Get(ctx context.Context, id int64) (models.Customer, error) {
	var c models.Customer
	if err := s.db.GetContext(ctx, &c, getCustomerQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, err
	}

	var l models.LoyaltyProgram
	err := s.db.GetContext(ctx, &l, getLoyaltyQuery, id)
	switch {
	case err == nil:
		c.Loyalty = &l
	case errors.Is(err, sql.ErrNoRows):
		// no loyalty program, leave the sub-record absent
	default:
		return models.Customer{}, err
	}

	return c, nil
}

var listCustomersQuery = `SELECT * FROM customers
	ORDER BY registration_date DESC, id DESC LIMIT ? OFFSET ?`

func (s *customerStore) List(ctx context.Context, page Page) ([]models.Customer, error) {
	limit, offset := page.LimitOffset()

	var customers []models.Customer
	if err := s.db.SelectContext(ctx, &customers, listCustomersQuery, limit, offset); err != nil {
		return nil, err
	}
	if err := s.attachLoyalty(ctx, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

var listCustomersByTypeQuery = `SELECT * FROM customers WHERE customer_type = ?
	ORDER BY registration_date DESC, id DESC LIMIT ? OFFSET ?`

func (s *customerStore) ListByType(ctx context.Context, customerType string, page Page) ([]models.Customer, error) {
	limit, offset := page.LimitOffset()

	var customers []models.Customer
	if err := s.db.SelectContext(ctx, &customers, listCustomersByTypeQuery, customerType, limit, offset); err != nil {
		return nil, err
	}
	if err := s.attachLoyalty(ctx, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

var listLoyaltyByCustomersQuery = "SELECT * FROM loyalty_programs WHERE customer_id IN (?)"

func (s *customerStore) attachLoyalty(ctx context.Context, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	ids := make([]int64, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}

	query, args, err := sqlx.In(listLoyaltyByCustomersQuery, ids)
	if err != nil {
		return err
	}

	var programs []models.LoyaltyProgram
	if err := s.db.SelectContext(ctx, &programs, query, args...); err != nil {
		return err
	}

	byCustomer := make(map[int64]models.LoyaltyProgram, len(programs))
	for _, p := range programs {
		byCustomer[p.CustomerID] = p
	}
	for i := range customers {
		if p, ok := byCustomer[customers[i].ID]; ok {
			p := p
			customers[i].Loyalty = &p
		}
	}
	return nil
}

var updateCustomerQuery = `UPDATE customers SET
	first_name = :first_name, last_name = :last_name, email = :email, phone = :phone,
	customer_type = :customer_type, birth_date = :birth_date, address = :address, is_active = :is_active
	WHERE id = :id`

func (s *customerStore) Update(ctx context.Context, c *models.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	// Exclude the record being updated so a customer can keep their own email
	if err := s.checkEmailFree(ctx, c.Email, c.ID); err != nil {
		return err
	}

	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}

	// registration_date is deliberately absent from the SET list; it is
	// server-set at creation and immutable
	if _, err := s.db.NamedExecContext(ctx, updateCustomerQuery, c); err != nil {
		return translateError(err)
	}

	updated, err := s.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = updated
	return nil
}

var deleteCustomerQuery = "DELETE FROM customers WHERE id = ?"

func (s *customerStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteCustomerQuery, id)
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

var customerEmailTakenQuery = "SELECT EXISTS(SELECT 1 FROM customers WHERE email = ? AND id <> ?)"

func (s *customerStore) checkEmailFree(ctx context.Context, email string, excludeID int64) error {
	var taken bool
	if err := s.db.GetContext(ctx, &taken, customerEmailTakenQuery, email, excludeID); err != nil {
		return err
	}
	if taken {
		return duplicateKeyErrors["uk_email"]
	}
	return nil
}

var customerOrderSummaryQuery = `SELECT COUNT(*) AS orders_count,
	COALESCE(SUM(final_amount), 0) AS total_spent
	FROM orders WHERE customer_id = ?`

// OrderSummary returns the customer together with the count and summed
// final amounts of all orders referencing them. A customer with no
// orders yields zero for both.
func (s *customerStore) OrderSummary(ctx context.Context, id int64) (models.CustomerOrderSummary, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return models.CustomerOrderSummary{}, err
	}

	summary := models.CustomerOrderSummary{Customer: customer}
	row := struct {
		OrdersCount int64           `db:"orders_count"`
		TotalSpent  decimal.Decimal `db:"total_spent"`
	}{}
	if err := s.db.GetContext(ctx, &row, customerOrderSummaryQuery, id); err != nil {
		return models.CustomerOrderSummary{}, err
	}
	summary.OrdersCount = row.OrdersCount
	summary.TotalSpent = row.TotalSpent
	return summary, nil
}

var upsertLoyaltyQuery = `INSERT INTO loyalty_programs (customer_id, points, tier)
	VALUES (:customer_id, :points, :tier)
	ON DUPLICATE KEY UPDATE points = VALUES(points), tier = VALUES(tier)`

func (s *customerStore) UpsertLoyalty(ctx context.Context, customerID int64, l *models.LoyaltyProgram) error {
	if err := validateLoyalty(l); err != nil {
		return err
	}
	if _, err := s.Get(ctx, customerID); err != nil {
		return err
	}

	l.CustomerID = customerID
	if _, err := s.db.NamedExecContext(ctx, upsertLoyaltyQuery, l); err != nil {
		return translateError(err)
	}

	var saved models.LoyaltyProgram
	if err := s.db.GetContext(ctx, &saved, getLoyaltyQuery, customerID); err != nil {
		return err
	}
	*l = saved
	return nil
}

var deleteLoyaltyQuery = "DELETE FROM loyalty_programs WHERE customer_id = ?"

// DeleteLoyalty removes a customer's loyalty program. The customer
// itself is never touched.
func (s *customerStore) DeleteLoyalty(ctx context.Context, customerID int64) error {
	res, err := s.db.ExecContext(ctx, deleteLoyaltyQuery, customerID)
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
