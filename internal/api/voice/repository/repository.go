package voiceRepository

import (
	"context"

	"VoiceCommerce/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Products:      &productRepository{q: sqlExecutor, log: r.log},
		Artisans:      &artisanRepository{q: sqlExecutor, log: r.log},
		Orders:        &orderRepository{q: sqlExecutor, log: r.log},
		VoiceCommands: &voiceRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Products interface {
	CreateProduct(ctx context.Context, product entity.Product) error
	FindProductsByArtisan(ctx context.Context, artisanID string, limit int) ([]entity.Product, error)
	FindProductByName(ctx context.Context, artisanID, name string) (entity.Product, error)
	SumProductPerformance(ctx context.Context, artisanID string) (entity.ProductPerformance, error)
	AveragePriceByCategory(ctx context.Context, artisanID, category string) (entity.CategoryPrice, error)
}

type Artisans interface {
	GetArtisanMetrics(ctx context.Context, artisanID string) (entity.ArtisanMetrics, error)
}

type Orders interface {
	FindOrdersByArtisan(ctx context.Context, artisanID string, limit int) ([]entity.Order, error)
	CountPendingOrders(ctx context.Context, artisanID string) (int64, error)
}

type VoiceCommands interface {
	CreateVoiceCommand(ctx context.Context, cmd entity.VoiceCommand) error
	GetVoiceCommandsByArtisan(ctx context.Context, artisanID string, limit, offset int) ([]entity.VoiceCommand, int, error)
}

type Client struct {
	Products      Products
	Artisans      Artisans
	Orders        Orders
	VoiceCommands VoiceCommands

	Commit   func() error
	Rollback func() error
}

type productRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type artisanRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type orderRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type voiceRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
