package itemrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing item to the database.
func (r *GormItemRepository) Update(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	// Select forces zero values through: clearing a note must reach the row.
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("product_id", "price", "note").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a single item.
func (r *GormItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

// GetAllByOrder retrieves every item attached to the given order.
func (r *GormItemRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteAllByOrder removes every item attached to the given order.
// Zero rows is not an error: an Open order may simply have no items yet.
func (r *GormItemRepository) DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", orderID.Bytes()).Error
}
