package voiceRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ArtisanMetricsDB struct {
	ID           sql.NullString  `db:"id"`
	TotalRevenue sql.NullFloat64 `db:"total_revenue"`
	TotalOrders  sql.NullInt64   `db:"total_orders"`
	Rating       sql.NullFloat64 `db:"rating"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r *artisanRepository) GetArtisanMetrics(ctx context.Context, artisanID string) (entity.ArtisanMetrics, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var metricsDB ArtisanMetricsDB

	argsKV := map[string]interface{}{
		"id": artisanID,
	}

	query, args, err := sqlx.Named(queryGetArtisanMetrics, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisanMetrics named query preparation err")
		return entity.ArtisanMetrics{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&metricsDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"artisan_id": artisanID,
			}).Warn("GetArtisanMetrics no rows found")
			return entity.ArtisanMetrics{}, voice.ErrArtisanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisanMetrics execution err")
		return entity.ArtisanMetrics{}, err
	}

	return entity.ArtisanMetrics{
		ArtisanID:    metricsDB.ID.String,
		TotalRevenue: metricsDB.TotalRevenue.Float64,
		TotalOrders:  metricsDB.TotalOrders.Int64,
		Rating:       metricsDB.Rating.Float64,
		UpdatedAt:    metricsDB.UpdatedAt,
	}, nil
}
