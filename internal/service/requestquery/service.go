// Package requestquery implements the read side of the admin request
// workflow: filtered, searchable, paginated request lists normalized
// into one uniform shape for both request types.
package requestquery

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"imovel_hub_server/internal/dao/mysql/repository"
	myredis "imovel_hub_server/internal/dao/redis"
	"imovel_hub_server/internal/dto/respond"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/constants"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/pagination"
)

// requestQueryService implements service.RequestQueryService.
type requestQueryService struct {
	repos *repository.Repositories
}

// NewRequestQueryService creates the query service.
func NewRequestQueryService(repos *repository.Repositories) *requestQueryService {
	return &requestQueryService{repos: repos}
}

// List pages through requests of one type. The read is side-effect
// free; store failures surface as a query-failed error with no retry.
func (s *requestQueryService) List(requestType, status, search, rawPage string) (*respond.RequestListRespond, error) {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}

	reqStatus := model.RequestStatus(status)
	if status != "" && !reqStatus.IsValidFor(reqType) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "invalid status %q for %s", status, requestType)
	}

	page := pagination.ParsePage(rawPage)
	offset := pagination.Offset(page, constants.REQUEST_PAGE_SIZE)

	// cache first; any miss or decode problem falls through to the store
	cacheKey := fmt.Sprintf("request_list_%s_%s_%s_%d", reqType, status, search, page)
	if myredis.Enabled() {
		if cached, err := myredis.GetKeyNilIsErr(cacheKey); err == nil {
			var rsp respond.RequestListRespond
			if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
				return &rsp, nil
			}
		}
	}

	var rsp *respond.RequestListRespond
	var err error
	if reqType == model.TypeVisits {
		rsp, err = s.listVisits(reqStatus, search, offset)
	} else {
		rsp, err = s.listReservations(reqStatus, search, offset)
	}
	if err != nil {
		zap.L().Error("request list query failed",
			zap.String("type", string(reqType)),
			zap.Error(err),
		)
		return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "request list query failed")
	}

	if myredis.Enabled() {
		s.setCache(cacheKey, rsp)
	}
	return rsp, nil
}

func (s *requestQueryService) listVisits(status model.RequestStatus, search string, offset int) (*respond.RequestListRespond, error) {
	requests, total, err := s.repos.VisitRequest.Search(status, search, offset, constants.REQUEST_PAGE_SIZE)
	if err != nil {
		return nil, err
	}

	uuids := make([]string, 0, len(requests))
	for _, request := range requests {
		uuids = append(uuids, request.Uuid)
	}
	agentsByRequest, err := s.loadAgents(uuids, model.TypeVisits)
	if err != nil {
		return nil, err
	}

	items := make([]respond.RequestListItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, respond.RequestListItem{
			Id:     request.Uuid,
			Type:   string(model.TypeVisits),
			Status: string(request.Status),
			Client: respond.ClientInfo{
				Ref:   request.ClientUuid,
				Name:  request.ClientName,
				Email: request.ClientEmail,
				Phone: request.ClientPhone,
				Cpf:   request.ClientCpf,
			},
			Property: respond.PropertyInfo{
				Ref:     request.PropertyUuid,
				Name:    request.PropertyName,
				Address: request.PropertyAddress,
			},
			Agents:         agentsByRequest[request.Uuid],
			RequestedSlots: request.RequestedSlots,
			ScheduledSlot:  request.ScheduledSlot,
			AdminMsg:       request.AdminMsg,
			ClientMsg:      request.ClientMsg,
			CreatedAt:      request.CreatedAt,
			UpdatedAt:      request.UpdatedAt,
		})
	}

	return &respond.RequestListRespond{
		Requests:   items,
		Total:      total,
		TotalPages: pagination.TotalPages(total, constants.REQUEST_PAGE_SIZE),
	}, nil
}

func (s *requestQueryService) listReservations(status model.RequestStatus, search string, offset int) (*respond.RequestListRespond, error) {
	requests, total, err := s.repos.ReservationRequest.Search(status, search, offset, constants.REQUEST_PAGE_SIZE)
	if err != nil {
		return nil, err
	}

	uuids := make([]string, 0, len(requests))
	for _, request := range requests {
		uuids = append(uuids, request.Uuid)
	}
	agentsByRequest, err := s.loadAgents(uuids, model.TypeReservations)
	if err != nil {
		return nil, err
	}

	items := make([]respond.RequestListItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, respond.RequestListItem{
			Id:     request.Uuid,
			Type:   string(model.TypeReservations),
			Status: string(request.Status),
			Client: respond.ClientInfo{
				Ref:   request.ClientUuid,
				Name:  request.ClientName,
				Email: request.ClientEmail,
				Phone: request.ClientPhone,
				Cpf:   request.ClientCpf,
			},
			Property: respond.PropertyInfo{
				Ref:     request.PropertyUuid,
				Name:    request.PropertyName,
				Address: request.PropertyAddress,
			},
			Unit: &respond.UnitInfo{
				Ref:        request.UnitUuid,
				Identifier: request.UnitIdentifier,
				Block:      request.UnitBlock,
			},
			Agents:    agentsByRequest[request.Uuid],
			AdminMsg:  request.AdminMsg,
			ClientMsg: request.ClientMsg,
			CreatedAt: request.CreatedAt,
			UpdatedAt: request.UpdatedAt,
		})
	}

	return &respond.RequestListRespond{
		Requests:   items,
		Total:      total,
		TotalPages: pagination.TotalPages(total, constants.REQUEST_PAGE_SIZE),
	}, nil
}

// loadAgents batch-loads agent assignments for a page of requests and
// groups them by request id. Every request gets a slice, empty when
// nothing is assigned; normalization is total, nothing stays nil.
func (s *requestQueryService) loadAgents(requestUuids []string, requestType model.RequestType) (map[string][]respond.AgentInfo, error) {
	grouped := make(map[string][]respond.AgentInfo, len(requestUuids))
	for _, uuid := range requestUuids {
		grouped[uuid] = []respond.AgentInfo{}
	}
	if len(requestUuids) == 0 {
		return grouped, nil
	}

	assignments, err := s.repos.RequestAgent.FindByRequests(requestUuids, requestType)
	if err != nil {
		return nil, err
	}
	for _, assignment := range assignments {
		grouped[assignment.RequestUuid] = append(grouped[assignment.RequestUuid], respond.AgentInfo{
			Ref:   assignment.AgentUuid,
			Name:  assignment.AgentName,
			Email: assignment.AgentEmail,
			Phone: assignment.AgentPhone,
			Creci: assignment.AgentCreci,
		})
	}
	return grouped, nil
}

// setCache stores a serialized response with a short TTL.
func (s *requestQueryService) setCache(key string, data interface{}) {
	rspBytes, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("marshal request list cache", zap.Error(err), zap.String("key", key))
		return
	}
	_ = myredis.SetKeyEx(key, string(rspBytes), time.Minute*constants.REDIS_TIMEOUT)
}
