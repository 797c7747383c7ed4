package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a record with the given identifier does
// not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a write because of a malformed or duplicate
// field. Field names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConstraintError rejects a delete because dependent rows still
// reference the target record.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

// MySQL error numbers we translate into the store taxonomy
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrRowReferenced  = 1451
	mysqlErrNoParentRow    = 1452
)

// Duplicate-entry messages per unique key, matching the taxonomy of
// rejections the API surfaces.
var duplicateKeyErrors = map[string]*ValidationError{
	"uk_email":              {Field: "email", Message: "a customer with this email already exists"},
	"uk_order_number":       {Field: "order_number", Message: "an order with this number already exists"},
	"uk_customer":           {Field: "customer_id", Message: "this customer already has a loyalty program"},
	"uk_product_ingredient": {Field: "ingredient_id", Message: "this product already has a recipe line for this ingredient"},
}

// translateError maps driver-level constraint failures onto the store
// error taxonomy. Anything else propagates unmodified.
func translateError(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}

	switch me.Number {
	case mysqlErrDuplicateEntry:
		for key, verr := range duplicateKeyErrors {
			if strings.Contains(me.Message, key) {
				return verr
			}
		}
		return &ValidationError{Field: "", Message: "duplicate value"}
	case mysqlErrRowReferenced:
		return &ConstraintError{Message: "record is still referenced by dependent records"}
	case mysqlErrNoParentRow:
		return &ValidationError{Field: "", Message: "referenced record does not exist"}
	}

	return err
}
