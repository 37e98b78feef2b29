package repository

import (
	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates the unit repository.
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

// FindByUuid finds a unit by public id.
func (r *unitRepository) FindByUuid(uuid string) (*model.Unit, error) {
	var unit model.Unit
	if err := r.db.First(&unit, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find unit uuid=%s", uuid)
	}
	return &unit, nil
}

// FindByPropertyUuid lists the units of a property.
func (r *unitRepository) FindByPropertyUuid(propertyUuid string) ([]model.Unit, error) {
	var units []model.Unit
	if err := r.db.Where("property_uuid = ?", propertyUuid).Order("block, identifier").Find(&units).Error; err != nil {
		return nil, wrapDBErrorf(err, "list units property_uuid=%s", propertyUuid)
	}
	return units, nil
}

// Create inserts a new unit.
func (r *unitRepository) Create(unit *model.Unit) error {
	if err := r.db.Create(unit).Error; err != nil {
		return wrapDBError(err, "create unit")
	}
	return nil
}

// SetAvailabilityIf flips is_available from the expected current value.
// The WHERE clause makes the write conditional so racing approvals
// cannot both claim the same unit.
func (r *unitRepository) SetAvailabilityIf(uuid string, current, next bool) (int64, error) {
	result := r.db.Model(&model.Unit{}).
		Where("uuid = ? AND is_available = ?", uuid, current).
		Update("is_available", next)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "update unit availability uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}
