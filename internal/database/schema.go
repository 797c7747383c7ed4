package database

// Schema statements in dependency order. Foreign key actions carry the
// ownership rules: CASCADE for owned rows (loyalty program, recipe lines,
// order items), RESTRICT where deletion must be rejected while referenced.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    first_name VARCHAR(100) NOT NULL,
	    last_name VARCHAR(100) NOT NULL,
	    email VARCHAR(255) NOT NULL,
	    phone VARCHAR(20) NOT NULL,
	    customer_type ENUM('regular', 'loyalty', 'corporate') NOT NULL DEFAULT 'regular',
	    registration_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    birth_date DATE NULL,
	    address TEXT,
	    is_active BOOLEAN NOT NULL DEFAULT TRUE,
	    UNIQUE KEY uk_email (email),
	    INDEX idx_customer_type (customer_type),
	    INDEX idx_registration_date (registration_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS loyalty_programs (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    customer_id BIGINT NOT NULL,
	    points INT NOT NULL DEFAULT 0,
	    tier ENUM('bronze', 'silver', 'gold') NOT NULL DEFAULT 'bronze',
	    joined_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    UNIQUE KEY uk_customer (customer_id),
	    CONSTRAINT fk_loyalty_customer FOREIGN KEY (customer_id)
	        REFERENCES customers(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS categories (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL,
	    description TEXT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS products (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(200) NOT NULL,
	    description TEXT,
	    category_id BIGINT NOT NULL,
	    price DECIMAL(10,2) NOT NULL,
	    cost DECIMAL(10,2) NOT NULL,
	    image VARCHAR(255),
	    is_available BOOLEAN NOT NULL DEFAULT TRUE,
	    preparation_time INT NOT NULL DEFAULT 0,
	    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	    INDEX idx_category (category_id),
	    CONSTRAINT fk_product_category FOREIGN KEY (category_id)
	        REFERENCES categories(id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS ingredients (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(200) NOT NULL,
	    unit ENUM('kg', 'g', 'l', 'ml', 'pcs') NOT NULL,
	    current_stock DECIMAL(10,2) NOT NULL,
	    min_stock DECIMAL(10,2) NOT NULL,
	    max_stock DECIMAL(10,2) NOT NULL,
	    cost_per_unit DECIMAL(10,2) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS product_ingredients (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    product_id BIGINT NOT NULL,
	    ingredient_id BIGINT NOT NULL,
	    quantity DECIMAL(10,2) NOT NULL,
	    UNIQUE KEY uk_product_ingredient (product_id, ingredient_id),
	    CONSTRAINT fk_recipe_product FOREIGN KEY (product_id)
	        REFERENCES products(id) ON DELETE CASCADE,
	    CONSTRAINT fk_recipe_ingredient FOREIGN KEY (ingredient_id)
	        REFERENCES ingredients(id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    order_number VARCHAR(20) NOT NULL,
	    customer_id BIGINT NULL,
	    order_type ENUM('in_store', 'online', 'delivery') NOT NULL DEFAULT 'in_store',
	    status ENUM('pending', 'preparing', 'ready', 'completed', 'cancelled') NOT NULL DEFAULT 'pending',
	    total_amount DECIMAL(10,2) NOT NULL,
	    discount_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
	    final_amount DECIMAL(10,2) NOT NULL,
	    notes TEXT,
	    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	    completed_at TIMESTAMP NULL,
	    UNIQUE KEY uk_order_number (order_number),
	    INDEX idx_customer (customer_id),
	    INDEX idx_status (status),
	    INDEX idx_created_at (created_at),
	    CONSTRAINT fk_order_customer FOREIGN KEY (customer_id)
	        REFERENCES customers(id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS order_items (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    order_id BIGINT NOT NULL,
	    product_id BIGINT NOT NULL,
	    quantity INT NOT NULL,
	    unit_price DECIMAL(10,2) NOT NULL,
	    total_price DECIMAL(10,2) NOT NULL,
	    INDEX idx_order (order_id),
	    INDEX idx_product (product_id),
	    CONSTRAINT fk_item_order FOREIGN KEY (order_id)
	        REFERENCES orders(id) ON DELETE CASCADE,
	    CONSTRAINT fk_item_product FOREIGN KEY (product_id)
	        REFERENCES products(id) ON DELETE RESTRICT,
	    CONSTRAINT chk_item_quantity CHECK (quantity > 0)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates all tables
func (db *DB) Migrate() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// TruncateAll removes all data but keeps the schema. Intended for tests
// and for reseeding.
func (db *DB) TruncateAll() error {
	queries := []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM product_ingredients",
		"DELETE FROM ingredients",
		"DELETE FROM products",
		"DELETE FROM categories",
		"DELETE FROM loyalty_programs",
		"DELETE FROM customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropAll removes all tables
func (db *DB) DropAll() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS product_ingredients",
		"DROP TABLE IF EXISTS ingredients",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS categories",
		"DROP TABLE IF EXISTS loyalty_programs",
		"DROP TABLE IF EXISTS customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
