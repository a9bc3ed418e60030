package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

var _ port.CatalogRepository = (*CatalogRepository)(nil)

// A CatalogRepository is the postgres-backed catalog: the swappable
// real-storage side of the repository port.
type CatalogRepository struct {
	sqldb sqldb
}

func NewCatalogRepository(sqldb sqldb) CatalogRepository {
	return CatalogRepository{sqldb}
}

const productColumns = `
	product_id, name, price, original_price, category, subcategory,
	image, description, sizes, colors, tags,
	is_new, is_limited, rating, reviews`

func (r CatalogRepository) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogRepository.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT` + productColumns + `
		FROM products ORDER BY seq ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r CatalogRepository) ProductByID(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "CatalogRepository.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT` + productColumns + `
		FROM products WHERE product_id = $1;`

	row := r.sqldb.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r CatalogRepository) Categories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CatalogRepository.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT category_id, name, slug, image, description, product_count
		FROM categories ORDER BY seq ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		var c domain.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Image, &c.Description, &c.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (r CatalogRepository) SaveProduct(
	ctx context.Context, v domain.Product,
) (saveErr error) {
	const op = "CatalogRepository.SaveProduct"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if saveErr == nil {
			if err := tx.Commit(); err != nil {
				saveErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			image = EXCLUDED.image,
			description = EXCLUDED.description,
			sizes = EXCLUDED.sizes,
			colors = EXCLUDED.colors,
			tags = EXCLUDED.tags,
			is_new = EXCLUDED.is_new,
			is_limited = EXCLUDED.is_limited,
			rating = EXCLUDED.rating,
			reviews = EXCLUDED.reviews;
	`

	sizesB, _ := json.Marshal(v.Sizes)
	colorsB, _ := json.Marshal(v.Colors)
	tagsB, _ := json.Marshal(v.Tags)

	_, err = tx.ExecContext(ctx, query,
		v.ID, v.Name, v.Price, v.OriginalPrice, v.Category, v.Subcategory,
		v.Image, v.Description, string(sizesB), string(colorsB), string(tagsB),
		v.IsNew, v.IsLimited, v.Rating, v.Reviews,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r CatalogRepository) DeleteProduct(
	ctx context.Context, id string,
) error {
	const op = "CatalogRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM products WHERE product_id = $1;`, id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

func scanProduct(scan func(...any) error) (domain.Product, error) {
	var (
		p       domain.Product
		sizesS  string
		colorsS string
		tagsS   string
	)
	err := scan(
		&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Category, &p.Subcategory,
		&p.Image, &p.Description, &sizesS, &colorsS, &tagsS,
		&p.IsNew, &p.IsLimited, &p.Rating, &p.Reviews,
	)
	if err != nil {
		return domain.Product{}, err
	}

	if err := json.Unmarshal([]byte(sizesS), &p.Sizes); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(colorsS), &p.Colors); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(tagsS), &p.Tags); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
