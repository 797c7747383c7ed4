package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
)

// CategoryStore is the access layer for product categories.
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	Get(ctx context.Context, id int64) (models.Category, error)
	List(ctx context.Context, page Page) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) error
}

func NewCategoryStore(db *database.DB) CategoryStore {
	return &categoryStore{db: db}
}

type categoryStore struct {
	db *database.DB
}

var insertCategoryQuery = "INSERT INTO categories (name, description) VALUES (:name, :description)"

func (s *categoryStore) Create(ctx context.Context, c *models.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, insertCategoryQuery, c)
	if err != nil {
		return translateError(err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

var getCategoryQuery = "SELECT * FROM categories WHERE id = ?"

func (s *categoryStore) Get(ctx context.Context, id int64) (models.Category, error) {
	var c models.Category
	if err := s.db.GetContext(ctx, &c, getCategoryQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return c, nil
}

var listCategoriesQuery = "SELECT * FROM categories ORDER BY name, id LIMIT ? OFFSET ?"

func (s *categoryStore) List(ctx context.Context, page Page) ([]models.Category, error) {
	limit, offset := page.LimitOffset()

	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories, listCategoriesQuery, limit, offset)
	return categories, err
}

var updateCategoryQuery = "UPDATE categories SET name = :name, description = :description WHERE id = :id"

func (s *categoryStore) Update(ctx context.Context, c *models.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}

	_, err := s.db.NamedExecContext(ctx, updateCategoryQuery, c)
	return translateError(err)
}

var deleteCategoryQuery = "DELETE FROM categories WHERE id = ?"

// Delete removes a category. Rejected while any product still belongs
// to it.
func (s *categoryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteCategoryQuery, id)
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

// ProductStore is the access layer for catalog products.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id int64) (models.Product, error)
	List(ctx context.Context, page Page) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
}

func NewProductStore(db *database.DB) ProductStore {
	return &productStore{db: db}
}

type productStore struct {
	db *database.DB
}

var insertProductQuery = `INSERT INTO products
	(name, description, category_id, price, cost, image, is_available, preparation_time)
	VALUES (:name, :description, :category_id, :price, :cost, :image, :is_available, :preparation_time)`

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, insertProductQuery, p)
	if err != nil {
		return translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	*p = created
	return nil
}

var getProductQuery = "SELECT * FROM products WHERE id = ?"

func (s *productStore) Get(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	if err := s.db.GetContext(ctx, &p, getProductQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

var listProductsQuery = "SELECT * FROM products ORDER BY category_id, name, id LIMIT ? OFFSET ?"

func (s *productStore) List(ctx context.Context, page Page) ([]models.Product, error) {
	limit, offset := page.LimitOffset()

	var products []models.Product
	err := s.db.SelectContext(ctx, &products, listProductsQuery, limit, offset)
	return products, err
}

var updateProductQuery = `UPDATE products SET
	name = :name, description = :description, category_id = :category_id,
	price = :price, cost = :cost, image = :image, is_available = :is_available,
	preparation_time = :preparation_time
	WHERE id = :id`

func (s *productStore) Update(ctx context.Context, p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}

	if _, err := s.db.NamedExecContext(ctx, updateProductQuery, p); err != nil {
		return translateError(err)
	}

	// updated_at refreshes on every write, read it back
	updated, err := s.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = updated
	return nil
}

var deleteProductQuery = "DELETE FROM products WHERE id = ?"

// Delete removes a product and cascades to its recipe lines. Rejected
// while any order item references the product.
func (s *productStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteProductQuery, id)
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
