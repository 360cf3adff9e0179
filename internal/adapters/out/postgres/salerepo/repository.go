package salerepo

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/errs"
)

// GormSaleRepository implements SaleRepository using GORM.
type GormSaleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSaleRepository creates a new GORM sale repository.
func NewGormSaleRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleRepository {
	return &GormSaleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sale to the database together with its items.
func (r *GormSaleRepository) Add(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing sale to the database, replacing its items and
// delivery steps with the aggregate's current state. Item rows removed from
// the aggregate are deleted rather than left orphaned.
func (r *GormSaleRepository) Update(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Save with FullSaveAssociations to upsert nested items and steps.
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error, aggregate.ID())
	}

	if err := r.deleteOrphanedItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sale by ID with its items and delivery steps.
func (r *GormSaleRepository) Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SaleDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Steps").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForOwner retrieves a sale by ID scoped to the owning user.
// Sales of other users are reported as not found.
func (r *GormSaleRepository) GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*sale.Sale, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	var dto SaleDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Steps").
		First(&dto, "id = ? AND owner_id = ?", id.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDraftBefore retrieves every draft sale whose order cutoff lies
// before the given instant. The cutoff is the start of the delivery day minus
// the configured number of hours.
func (r *GormSaleRepository) GetAllDraftBefore(
	ctx context.Context,
	cutoff time.Time,
	cutoffHours int,
) ([]*sale.Sale, error) {
	var dtos []SaleDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Steps").
		Where(
			"status = ? AND date_trunc('day', delivery_date) - make_interval(hours => ?) < ?",
			int(sale.StatusDraft), cutoffHours, cutoff,
		).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sales := make([]*sale.Sale, 0, len(dtos))
	for _, dto := range dtos {
		s, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		sales = append(sales, s)
	}

	return sales, nil
}

// Delete removes a sale and its child rows from the database.
func (r *GormSaleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Select("Items", "Steps").
		Delete(&SaleDTO{ID: id.Bytes()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sale", id.String())
	}

	return nil
}

// deleteOrphanedItems removes item rows that are no longer part of the
// aggregate. FullSaveAssociations upserts children but never deletes them.
func (r *GormSaleRepository) deleteOrphanedItems(ctx context.Context, dto SaleDTO) error {
	tx := r.db.WithContext(ctx).Where("sale_id = ?", dto.ID)

	if len(dto.Items) > 0 {
		keep := make([]any, 0, len(dto.Items))
		for _, item := range dto.Items {
			keep = append(keep, item.ID)
		}
		tx = tx.Where("id NOT IN ?", keep)
	}

	return tx.Delete(&ItemDTO{}).Error
}

// translateUniqueViolation maps a postgres unique index violation to a
// domain conflict error. The (sale_id, customer_id) index on delivery steps
// serializes concurrent route generation for the same sale.
func translateUniqueViolation(err error, saleID kernel.UUID) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return errs.NewConflictErrorWithCause("sale", saleID.String(), err)
	}
	return err
}
