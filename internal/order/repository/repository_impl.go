package repository

import (
	"context"
	"time"

	"github.com/estatehub/backoffice/internal/order/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB *gorm.DB
}

type repo struct {
	db *gorm.DB
}

func Provide(p Params) domain.Repository {
	return &repo{db: p.DB}
}

func (r *repo) ListOrders(ctx context.Context, from, to time.Time, f domain.ListOrdersFilter) ([]domain.Order, error) {
	stmt := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("created_at >= ? AND created_at <= ?", from, to)
	if f.ServiceType != "" {
		stmt = stmt.Where("service_type = ?", f.ServiceType)
	}
	if f.Status != "" {
		stmt = stmt.Where("status = ?", f.Status)
	}
	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	var orders []domain.Order
	if err := stmt.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Order("created_at ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repo) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) ListValuators(ctx context.Context, activeOnly bool) ([]domain.Valuator, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.Valuator{})
	if activeOnly {
		stmt = stmt.Where("active = ?", true)
	}

	var valuators []domain.Valuator
	if err := stmt.Order("code ASC").Find(&valuators).Error; err != nil {
		return nil, err
	}
	return valuators, nil
}
