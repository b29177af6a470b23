package voiceRepository

import (
	"context"
	"database/sql"
	"time"

	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID          sql.NullString  `db:"id"`
	ArtisanID   sql.NullString  `db:"artisan_id"`
	ProductID   sql.NullString  `db:"product_id"`
	ProductName sql.NullString  `db:"product_name"`
	Quantity    sql.NullInt64   `db:"quantity"`
	Amount      sql.NullFloat64 `db:"amount"`
	Status      sql.NullString  `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r *orderRepository) FindOrdersByArtisan(ctx context.Context, artisanID string, limit int) ([]entity.Order, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var ordersDB []OrderDB

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryFindOrdersByArtisan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindOrdersByArtisan named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &ordersDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindOrdersByArtisan execution err")
		return nil, err
	}

	orders := make([]entity.Order, 0, len(ordersDB))
	for _, orderDB := range ordersDB {
		orders = append(orders, entity.Order{
			ID:          orderDB.ID.String,
			ArtisanID:   orderDB.ArtisanID.String,
			ProductID:   orderDB.ProductID.String,
			ProductName: orderDB.ProductName.String,
			Quantity:    int(orderDB.Quantity.Int64),
			Amount:      orderDB.Amount.Float64,
			Status:      orderDB.Status.String,
			CreatedAt:   orderDB.CreatedAt,
		})
	}

	return orders, nil
}

func (r *orderRepository) CountPendingOrders(ctx context.Context, artisanID string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int64

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"status":     entity.OrderStatusPending,
	}

	query, args, err := sqlx.Named(queryCountPendingOrders, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountPendingOrders named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountPendingOrders execution err")
		return 0, err
	}

	return total, nil
}
