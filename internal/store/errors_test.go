package store

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateErrorDuplicateEmail(t *testing.T) {
	err := translateError(&mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'marie@example.com' for key 'customers.uk_email'",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "a customer with this email already exists", verr.Message)
}

func TestTranslateErrorDuplicateRecipeLine(t *testing.T) {
	err := translateError(&mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry '3-7' for key 'product_ingredients.uk_product_ingredient'",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ingredient_id", verr.Field)
}

func TestTranslateErrorRowReferenced(t *testing.T) {
	err := translateError(&mysql.MySQLError{
		Number:  1451,
		Message: "Cannot delete or update a parent row: a foreign key constraint fails",
	})

	var cerr *ConstraintError
	require.ErrorAs(t, err, &cerr)
}

func TestTranslateErrorNoParentRow(t *testing.T) {
	err := translateError(&mysql.MySQLError{
		Number:  1452,
		Message: "Cannot add or update a child row: a foreign key constraint fails",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTranslateErrorPassthrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateError(plain))
}
