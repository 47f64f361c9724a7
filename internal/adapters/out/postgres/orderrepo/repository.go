package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository stores placed orders in the orders table. Lines,
// customer and history live in JSON columns of the same row.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts a freshly placed order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes a status change. The row is only touched when its version is
// the one the aggregate was loaded with; otherwise somebody else changed the
// order in between and errs.VersionIsInvalidError is returned.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Select("status", "history", "version", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order " + aggregate.Number())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, id.String(), "id = ?", id.Bytes())
}

// GetByNumber looks an order up by the number printed on the receipt.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.first(ctx, number, "number = ?", number)
}

func (r *GormOrderRepository) first(ctx context.Context, key string, cond string, arg any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Where(cond, arg).First(&dto).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.NewObjectNotFoundError("order", key)
	case err != nil:
		return nil, err
	}
	return toDomain(dto)
}

// ListByStatuses retrieves the orders in the given statuses, oldest first.
func (r *GormOrderRepository) ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at, number")
	if len(statuses) > 0 {
		raw := make([]int, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, int(s))
		}
		query = query.Where("status IN ?", raw)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(dtos))
	for i := range dtos {
		o, err := toDomain(dtos[i])
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", dtos[i].Number, err)
		}
		orders[i] = o
	}
	return orders, nil
}

// CountByStatus returns the number of orders per status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	var rows []struct {
		Status int
		Count  int
	}
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		counts[order.Status(row.Status)] = row.Count
	}
	return counts, nil
}
