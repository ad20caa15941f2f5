package postgres

import (
	"context"
	"fmt"
)

// Esquema del catálogo. Los IDs públicos (productos y categorías) son hex de
// 24 caracteres; los sub-identificadores de variante son UUID en texto.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          CHAR(24) PRIMARY KEY,
		name        TEXT        NOT NULL,
		description TEXT        NOT NULL DEFAULT '',
		is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id            CHAR(24) PRIMARY KEY,
		name          TEXT          NOT NULL,
		description   TEXT          NOT NULL,
		category_id   CHAR(24)      NOT NULL REFERENCES categories (id),
		brand         TEXT          NOT NULL DEFAULT '',
		base_price    NUMERIC(12,2) NOT NULL CHECK (base_price >= 0),
		discount      NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (discount >= 0),
		discount_type TEXT          NOT NULL DEFAULT 'percentage',
		images        TEXT[]        NOT NULL DEFAULT '{}',
		tags          TEXT[]        NOT NULL DEFAULT '{}',
		is_active     BOOLEAN       NOT NULL DEFAULT TRUE,
		is_featured   BOOLEAN       NOT NULL DEFAULT FALSE,
		slug          TEXT          NOT NULL,
		created_at    TIMESTAMPTZ   NOT NULL,
		updated_at    TIMESTAMPTZ   NOT NULL,
		CONSTRAINT products_slug_key UNIQUE (slug)
	)`,
	`CREATE TABLE IF NOT EXISTS product_variants (
		id         TEXT          PRIMARY KEY,
		product_id CHAR(24)      NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		position   INT           NOT NULL,
		name       TEXT          NOT NULL,
		color      TEXT          NOT NULL DEFAULT '',
		size       TEXT          NOT NULL DEFAULT '',
		sku        TEXT          NOT NULL,
		price      NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		inventory  INT           NOT NULL DEFAULT 0 CHECK (inventory >= 0),
		is_active  BOOLEAN       NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ   NOT NULL,
		updated_at TIMESTAMPTZ   NOT NULL,
		CONSTRAINT product_variants_sku_key UNIQUE (sku)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_active_created ON products (is_active, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_product ON product_variants (product_id, position)`,
}

// EnsureSchema crea las tablas e índices del catálogo si no existen.
// La usan cmd/seed y el arranque del servidor cuando DB_AUTO_MIGRATE está activo.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
