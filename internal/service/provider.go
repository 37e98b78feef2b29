package service

import (
	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/infrastructure/mq"
	"imovel_hub_server/internal/service/agentapproval"
	"imovel_hub_server/internal/service/auth"
	"imovel_hub_server/internal/service/catalog"
	"imovel_hub_server/internal/service/requestlifecycle"
	"imovel_hub_server/internal/service/requestquery"
)

// Services aggregates every service instance. The handler layer
// receives this as its single dependency.
type Services struct {
	Auth             AuthService
	RequestQuery     RequestQueryService
	RequestLifecycle RequestLifecycleService
	Catalog          CatalogService
	AgentApproval    AgentApprovalService
}

// NewServices wires the service layer: repositories in, lifecycle
// events out through the publisher.
func NewServices(repos *repository.Repositories, publisher mq.EventPublisher) *Services {
	if publisher == nil {
		publisher = mq.NoopPublisher{}
	}

	return &Services{
		Auth:             auth.NewAuthService(repos),
		RequestQuery:     requestquery.NewRequestQueryService(repos),
		RequestLifecycle: requestlifecycle.NewRequestLifecycleService(repos, publisher),
		Catalog:          catalog.NewCatalogService(repos),
		AgentApproval:    agentapproval.NewAgentApprovalService(repos),
	}
}
