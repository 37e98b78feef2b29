package repository

import (
	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type requestAgentRepository struct {
	db *gorm.DB
}

// NewRequestAgentRepository creates the request agent repository.
func NewRequestAgentRepository(db *gorm.DB) RequestAgentRepository {
	return &requestAgentRepository{db: db}
}

// FindByRequest lists assignments of one request in assignment order.
func (r *requestAgentRepository) FindByRequest(requestUuid string, requestType model.RequestType) ([]model.RequestAgent, error) {
	var assignments []model.RequestAgent
	if err := r.db.Where("request_uuid = ? AND request_type = ?", requestUuid, requestType).
		Order("position").Find(&assignments).Error; err != nil {
		return nil, wrapDBErrorf(err, "list request agents request_uuid=%s", requestUuid)
	}
	return assignments, nil
}

// FindByRequests batch-loads assignments for a page of requests.
func (r *requestAgentRepository) FindByRequests(requestUuids []string, requestType model.RequestType) ([]model.RequestAgent, error) {
	if len(requestUuids) == 0 {
		return nil, nil
	}
	var assignments []model.RequestAgent
	if err := r.db.Where("request_uuid IN ? AND request_type = ?", requestUuids, requestType).
		Order("request_uuid, position").Find(&assignments).Error; err != nil {
		return nil, wrapDBError(err, "batch list request agents")
	}
	return assignments, nil
}

// Create inserts a new assignment.
func (r *requestAgentRepository) Create(assignment *model.RequestAgent) error {
	if err := r.db.Create(assignment).Error; err != nil {
		return wrapDBError(err, "create request agent")
	}
	return nil
}

// CountByRequest counts assignments on a request.
func (r *requestAgentRepository) CountByRequest(requestUuid string, requestType model.RequestType) (int64, error) {
	var count int64
	if err := r.db.Model(&model.RequestAgent{}).
		Where("request_uuid = ? AND request_type = ?", requestUuid, requestType).
		Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "count request agents request_uuid=%s", requestUuid)
	}
	return count, nil
}

// DeleteByRequest removes all assignments of a request.
func (r *requestAgentRepository) DeleteByRequest(requestUuid string, requestType model.RequestType) error {
	if err := r.db.Where("request_uuid = ? AND request_type = ?", requestUuid, requestType).
		Delete(&model.RequestAgent{}).Error; err != nil {
		return wrapDBErrorf(err, "delete request agents request_uuid=%s", requestUuid)
	}
	return nil
}
