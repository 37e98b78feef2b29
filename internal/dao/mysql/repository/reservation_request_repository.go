package repository

import (
	"strings"

	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type reservationRequestRepository struct {
	db *gorm.DB
}

// NewReservationRequestRepository creates the reservation request repository.
func NewReservationRequestRepository(db *gorm.DB) ReservationRequestRepository {
	return &reservationRequestRepository{db: db}
}

// FindByUuid finds a reservation request by public id.
func (r *reservationRequestRepository) FindByUuid(uuid string) (*model.ReservationRequest, error) {
	var request model.ReservationRequest
	if err := r.db.First(&request, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find reservation request uuid=%s", uuid)
	}
	return &request, nil
}

// Search pages through reservation requests. An empty status means no
// status filter; search matches client or property name
// case-insensitively.
func (r *reservationRequestRepository) Search(status model.RequestStatus, search string, offset, limit int) ([]model.ReservationRequest, int64, error) {
	query := r.db.Model(&model.ReservationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(client_name) LIKE ? OR LOWER(property_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count reservation requests")
	}

	var requests []model.ReservationRequest
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, wrapDBError(err, "search reservation requests")
	}
	return requests, total, nil
}

// Create inserts a new reservation request.
func (r *reservationRequestRepository) Create(request *model.ReservationRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "create reservation request")
	}
	return nil
}

// UpdateStatusIfCurrent moves status from current to next in a single
// conditional write. RowsAffected 0 means another writer got there
// first or the request does not exist.
func (r *reservationRequestRepository) UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": next}
	for column, value := range extra {
		updates[column] = value
	}
	result := r.db.Model(&model.ReservationRequest{}).
		Where("uuid = ? AND status = ?", uuid, current).
		Updates(updates)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "update reservation request status uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}

// SoftDelete removes a reservation request; rows affected 0 means not
// found.
func (r *reservationRequestRepository) SoftDelete(uuid string) (int64, error) {
	result := r.db.Where("uuid = ?", uuid).Delete(&model.ReservationRequest{})
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "delete reservation request uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}
