package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
)

// IngredientStore is the access layer for inventory ingredients.
type IngredientStore interface {
	Create(ctx context.Context, i *models.Ingredient) error
	Get(ctx context.Context, id int64) (models.Ingredient, error)
	List(ctx context.Context, page Page) ([]models.Ingredient, error)
	ListRestockNeeded(ctx context.Context, page Page) ([]models.Ingredient, error)
	Update(ctx context.Context, i *models.Ingredient) error
	Delete(ctx context.Context, id int64) error
}

func NewIngredientStore(db *database.DB) IngredientStore {
	return &ingredientStore{db: db}
}

type ingredientStore struct {
	db *database.DB
}

var insertIngredientQuery = `INSERT INTO ingredients
	(name, unit, current_stock, min_stock, max_stock, cost_per_unit)
	VALUES (:name, :unit, :current_stock, :min_stock, :max_stock, :cost_per_unit)`

func (s *ingredientStore) Create(ctx context.Context, i *models.Ingredient) error {
	if err := validateIngredient(i); err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, insertIngredientQuery, i)
	if err != nil {
		return translateError(err)
	}
	i.ID, err = res.LastInsertId()
	return err
}

var getIngredientQuery = "SELECT * FROM ingredients WHERE id = ?"

func (s *ingredientStore) Get(ctx context.Context, id int64) (models.Ingredient, error) {
	var i models.Ingredient
	if err := s.db.GetContext(ctx, &i, getIngredientQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ingredient{}, ErrNotFound
		}
		return models.Ingredient{}, err
	}
	return i, nil
}

var listIngredientsQuery = "SELECT * FROM ingredients ORDER BY name, id LIMIT ? OFFSET ?"

func (s *ingredientStore) List(ctx context.Context, page Page) ([]models.Ingredient, error) {
	limit, offset := page.LimitOffset()

	var ingredients []models.Ingredient
	err := s.db.SelectContext(ctx, &ingredients, listIngredientsQuery, limit, offset)
	return ingredients, err
}

var listRestockNeededQuery = `SELECT * FROM ingredients
	WHERE current_stock <= min_stock ORDER BY name, id LIMIT ? OFFSET ?`

// ListRestockNeeded returns ingredients whose stock has dropped to or
// below their minimum. The predicate is evaluated per request, nothing
// is stored.
func (s *ingredientStore) ListRestockNeeded(ctx context.Context, page Page) ([]models.Ingredient, error) {
	limit, offset := page.LimitOffset()

	var ingredients []models.Ingredient
	err := s.db.SelectContext(ctx, &ingredients, listRestockNeededQuery, limit, offset)
	return ingredients, err
}

var updateIngredientQuery = `UPDATE ingredients SET
	name = :name, unit = :unit, current_stock = :current_stock,
	min_stock = :min_stock, max_stock = :max_stock, cost_per_unit = :cost_per_unit
	WHERE id = :id`

func (s *ingredientStore) Update(ctx context.Context, i *models.Ingredient) error {
	if err := validateIngredient(i); err != nil {
		return err
	}
	if _, err := s.Get(ctx, i.ID); err != nil {
		return err
	}

	_, err := s.db.NamedExecContext(ctx, updateIngredientQuery, i)
	return translateError(err)
}

var deleteIngredientQuery = "DELETE FROM ingredients WHERE id = ?"

// Delete removes an ingredient. Rejected while any recipe line
// references it.
func (s *ingredientStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteIngredientQuery, id)
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

// RecipeStore is the access layer for product recipe lines.
type RecipeStore interface {
	Create(ctx context.Context, r *models.ProductIngredient) error
	Get(ctx context.Context, id int64) (models.ProductIngredient, error)
	List(ctx context.Context, page Page) ([]models.ProductIngredient, error)
	ListByProduct(ctx context.Context, productID int64) ([]models.ProductIngredient, error)
	Update(ctx context.Context, r *models.ProductIngredient) error
	Delete(ctx context.Context, id int64) error
}

func NewRecipeStore(db *database.DB) RecipeStore {
	return &recipeStore{db: db}
}

type recipeStore struct {
	db *database.DB
}

var insertRecipeLineQuery = `INSERT INTO product_ingredients (product_id, ingredient_id, quantity)
	VALUES (:product_id, :ingredient_id, :quantity)`

func (s *recipeStore) Create(ctx context.Context, r *models.ProductIngredient) error {
	if err := validateRecipeLine(r); err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, insertRecipeLineQuery, r)
	if err != nil {
		return translateError(err)
	}
	r.ID, err = res.LastInsertId()
	return err
}

var getRecipeLineQuery = "SELECT * FROM product_ingredients WHERE id = ?"

func (s *recipeStore) Get(ctx context.Context, id int64) (models.ProductIngredient, error) {
	var r models.ProductIngredient
	if err := s.db.GetContext(ctx, &r, getRecipeLineQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProductIngredient{}, ErrNotFound
		}
		return models.ProductIngredient{}, err
	}
	return r, nil
}

var listRecipeLinesQuery = "SELECT * FROM product_ingredients ORDER BY product_id, ingredient_id LIMIT ? OFFSET ?"

func (s *recipeStore) List(ctx context.Context, page Page) ([]models.ProductIngredient, error) {
	limit, offset := page.LimitOffset()

	var lines []models.ProductIngredient
	err := s.db.SelectContext(ctx, &lines, listRecipeLinesQuery, limit, offset)
	return lines, err
}

var listRecipeLinesByProductQuery = "SELECT * FROM product_ingredients WHERE product_id = ? ORDER BY ingredient_id"

func (s *recipeStore) ListByProduct(ctx context.Context, productID int64) ([]models.ProductIngredient, error) {
	var lines []models.ProductIngredient
	err := s.db.SelectContext(ctx, &lines, listRecipeLinesByProductQuery, productID)
	return lines, err
}

var updateRecipeLineQuery = `UPDATE product_ingredients SET
	product_id = :product_id, ingredient_id = :ingredient_id, quantity = :quantity
	WHERE id = :id`

func (s *recipeStore) Update(ctx context.Context, r *models.ProductIngredient) error {
	if err := validateRecipeLine(r); err != nil {
		return err
	}
	if _, err := s.Get(ctx, r.ID); err != nil {
		return err
	}

	_, err := s.db.NamedExecContext(ctx, updateRecipeLineQuery, r)
	return translateError(err)
}

var deleteRecipeLineQuery = "DELETE FROM product_ingredients WHERE id = ?"

func (s *recipeStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteRecipeLineQuery, id)
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
