package repository

import (
	"strings"

	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates the property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// FindByUuid finds a property by public id.
func (r *propertyRepository) FindByUuid(uuid string) (*model.Property, error) {
	var property model.Property
	if err := r.db.First(&property, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find property uuid=%s", uuid)
	}
	return &property, nil
}

// FindByUuids batch-loads properties by public id.
func (r *propertyRepository) FindByUuids(uuids []string) ([]model.Property, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var properties []model.Property
	if err := r.db.Where("uuid IN ?", uuids).Find(&properties).Error; err != nil {
		return nil, wrapDBError(err, "batch find properties")
	}
	return properties, nil
}

// GetPropertyList pages through properties filtered by city and name.
func (r *propertyRepository) GetPropertyList(city, search string, offset, limit int) ([]model.Property, int64, error) {
	query := r.db.Model(&model.Property{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count properties")
	}

	var properties []model.Property
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&properties).Error; err != nil {
		return nil, 0, wrapDBError(err, "list properties")
	}
	return properties, total, nil
}

// Create inserts a new property.
func (r *propertyRepository) Create(property *model.Property) error {
	if err := r.db.Create(property).Error; err != nil {
		return wrapDBError(err, "create property")
	}
	return nil
}
