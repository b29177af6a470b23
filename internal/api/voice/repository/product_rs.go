package voiceRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProductDB struct {
	ID        sql.NullString  `db:"id"`
	ArtisanID sql.NullString  `db:"artisan_id"`
	Name      sql.NullString  `db:"name"`
	Category  sql.NullString  `db:"category"`
	Price     sql.NullFloat64 `db:"price"`
	Currency  sql.NullString  `db:"currency"`
	Status    sql.NullString  `db:"status"`
	Views     sql.NullInt64   `db:"views"`
	Sales     sql.NullInt64   `db:"sales"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type ProductPerformanceDB struct {
	ProductCount int64   `db:"product_count"`
	Views        int64   `db:"views"`
	Sales        int64   `db:"sales"`
	Revenue      float64 `db:"revenue"`
}

type CategoryPriceDB struct {
	Category     string  `db:"category"`
	AveragePrice float64 `db:"average_price"`
	ProductCount int64   `db:"product_count"`
}

func (r *productRepository) CreateProduct(ctx context.Context, product entity.Product) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         product.ID,
		"artisan_id": product.ArtisanID,
		"name":       product.Name,
		"category":   product.Category,
		"price":      product.Price,
		"currency":   product.Currency,
		"status":     product.Status,
		"created_at": product.CreatedAt,
		"updated_at": product.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateProduct")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"artisan_id": product.ArtisanID,
			"error":      err.Error(),
		}).Error("Database error when creating product")
		return err
	}

	return nil
}

func (r *productRepository) FindProductsByArtisan(ctx context.Context, artisanID string, limit int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productsDB []ProductDB

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"status":     entity.ProductStatusActive,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryFindProductsByArtisan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindProductsByArtisan named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindProductsByArtisan execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(productsDB))
	for _, productDB := range productsDB {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}

func (r *productRepository) FindProductByName(ctx context.Context, artisanID, name string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productDB ProductDB

	name = strings.TrimSpace(name)
	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"status":     entity.ProductStatusActive,
		"name":       "%" + escapeLike(name) + "%",
		"exact_name": name,
	}

	query, args, err := sqlx.Named(queryFindProductByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindProductByName named query preparation err")
		return entity.Product{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&productDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, voice.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindProductByName execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(productDB), nil
}

func (r *productRepository) SumProductPerformance(ctx context.Context, artisanID string) (entity.ProductPerformance, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var performanceDB ProductPerformanceDB

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"status":     entity.ProductStatusActive,
	}

	query, args, err := sqlx.Named(querySumProductPerformance, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumProductPerformance named query preparation err")
		return entity.ProductPerformance{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&performanceDB); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumProductPerformance execution err")
		return entity.ProductPerformance{}, err
	}

	return entity.ProductPerformance{
		ProductCount: performanceDB.ProductCount,
		Views:        performanceDB.Views,
		Sales:        performanceDB.Sales,
		Revenue:      performanceDB.Revenue,
	}, nil
}

// AveragePriceByCategory returns a zero-count result when the artisan has no
// active product in the category.
func (r *productRepository) AveragePriceByCategory(ctx context.Context, artisanID, category string) (entity.CategoryPrice, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var priceDB CategoryPriceDB

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"category":   category,
		"status":     entity.ProductStatusActive,
	}

	query, args, err := sqlx.Named(queryAveragePriceByCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AveragePriceByCategory named query preparation err")
		return entity.CategoryPrice{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&priceDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CategoryPrice{Category: category}, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AveragePriceByCategory execution err")
		return entity.CategoryPrice{}, err
	}

	return entity.CategoryPrice{
		Category:     priceDB.Category,
		AveragePrice: priceDB.AveragePrice,
		ProductCount: priceDB.ProductCount,
	}, nil
}

func (r *productRepository) makeProduct(productDB ProductDB) entity.Product {
	return entity.Product{
		ID:        productDB.ID.String,
		ArtisanID: productDB.ArtisanID.String,
		Name:      productDB.Name.String,
		Category:  productDB.Category.String,
		Price:     productDB.Price.Float64,
		Currency:  productDB.Currency.String,
		Status:    productDB.Status.String,
		Views:     productDB.Views.Int64,
		Sales:     productDB.Sales.Int64,
		CreatedAt: productDB.CreatedAt,
		UpdatedAt: productDB.UpdatedAt,
	}
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
