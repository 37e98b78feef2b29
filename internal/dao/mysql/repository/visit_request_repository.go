package repository

import (
	"strings"

	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type visitRequestRepository struct {
	db *gorm.DB
}

// NewVisitRequestRepository creates the visit request repository.
func NewVisitRequestRepository(db *gorm.DB) VisitRequestRepository {
	return &visitRequestRepository{db: db}
}

// FindByUuid finds a visit request by public id.
func (r *visitRequestRepository) FindByUuid(uuid string) (*model.VisitRequest, error) {
	var request model.VisitRequest
	if err := r.db.First(&request, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find visit request uuid=%s", uuid)
	}
	return &request, nil
}

// Search pages through visit requests. An empty status means no status
// filter; search matches client or property name case-insensitively.
func (r *visitRequestRepository) Search(status model.RequestStatus, search string, offset, limit int) ([]model.VisitRequest, int64, error) {
	query := r.db.Model(&model.VisitRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(client_name) LIKE ? OR LOWER(property_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count visit requests")
	}

	var requests []model.VisitRequest
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, wrapDBError(err, "search visit requests")
	}
	return requests, total, nil
}

// Create inserts a new visit request.
func (r *visitRequestRepository) Create(request *model.VisitRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "create visit request")
	}
	return nil
}

// UpdateStatusIfCurrent moves status from current to next in a single
// conditional write. RowsAffected 0 means another writer got there
// first or the request does not exist.
func (r *visitRequestRepository) UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": next}
	for column, value := range extra {
		updates[column] = value
	}
	result := r.db.Model(&model.VisitRequest{}).
		Where("uuid = ? AND status = ?", uuid, current).
		Updates(updates)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "update visit request status uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}

// SoftDelete removes a visit request; rows affected 0 means not found.
func (r *visitRequestRepository) SoftDelete(uuid string) (int64, error) {
	result := r.db.Where("uuid = ?", uuid).Delete(&model.VisitRequest{})
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "delete visit request uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}
