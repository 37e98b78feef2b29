package repository

import (
	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

type agentApplicationRepository struct {
	db *gorm.DB
}

// NewAgentApplicationRepository creates the agent application repository.
func NewAgentApplicationRepository(db *gorm.DB) AgentApplicationRepository {
	return &agentApplicationRepository{db: db}
}

// FindByUuid finds an application by public id.
func (r *agentApplicationRepository) FindByUuid(uuid string) (*model.AgentApplication, error) {
	var application model.AgentApplication
	if err := r.db.First(&application, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find agent application uuid=%s", uuid)
	}
	return &application, nil
}

// FindPendingByUser finds a user's pending application, if any.
func (r *agentApplicationRepository) FindPendingByUser(userUuid string) (*model.AgentApplication, error) {
	var application model.AgentApplication
	if err := r.db.Where("user_uuid = ? AND status = ?", userUuid, model.StatusPending).
		First(&application).Error; err != nil {
		return nil, wrapDBErrorf(err, "find pending agent application user_uuid=%s", userUuid)
	}
	return &application, nil
}

// Search pages through applications filtered by status.
func (r *agentApplicationRepository) Search(status model.RequestStatus, offset, limit int) ([]model.AgentApplication, int64, error) {
	query := r.db.Model(&model.AgentApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count agent applications")
	}

	var applications []model.AgentApplication
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&applications).Error; err != nil {
		return nil, 0, wrapDBError(err, "search agent applications")
	}
	return applications, total, nil
}

// Create inserts a new application.
func (r *agentApplicationRepository) Create(application *model.AgentApplication) error {
	if err := r.db.Create(application).Error; err != nil {
		return wrapDBError(err, "create agent application")
	}
	return nil
}

// UpdateStatusIfCurrent moves status from current to next in a single
// conditional write. Returns rows changed.
func (r *agentApplicationRepository) UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": next}
	for column, value := range extra {
		updates[column] = value
	}
	result := r.db.Model(&model.AgentApplication{}).
		Where("uuid = ? AND status = ?", uuid, current).
		Updates(updates)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "update agent application status uuid=%s", uuid)
	}
	return result.RowsAffected, nil
}
