package repository

import (
	"errors"

	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates the favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Exists reports whether a user favorited a property.
func (r *favoriteRepository) Exists(userUuid, propertyUuid string) (bool, error) {
	var favorite model.Favorite
	err := r.db.Where("user_uuid = ? AND property_uuid = ?", userUuid, propertyUuid).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, wrapDBError(err, "check favorite")
	}
	return true, nil
}

// Create inserts a favorite.
func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		return wrapDBError(err, "create favorite")
	}
	return nil
}

// Delete removes a favorite. The delete is hard: a soft-deleted row
// would keep occupying the unique (user, property) index and block
// re-favoriting.
func (r *favoriteRepository) Delete(userUuid, propertyUuid string) error {
	if err := r.db.Unscoped().
		Where("user_uuid = ? AND property_uuid = ?", userUuid, propertyUuid).
		Delete(&model.Favorite{}).Error; err != nil {
		return wrapDBError(err, "delete favorite")
	}
	return nil
}

// FindByUser lists a user's favorited property uuids.
func (r *favoriteRepository) FindByUser(userUuid string) ([]string, error) {
	var propertyUuids []string
	if err := r.db.Model(&model.Favorite{}).
		Where("user_uuid = ?", userUuid).
		Order("created_at DESC").
		Pluck("property_uuid", &propertyUuids).Error; err != nil {
		return nil, wrapDBErrorf(err, "list favorites user_uuid=%s", userUuid)
	}
	return propertyUuids, nil
}
