// Package requestlifecycle implements the write side of the admin
// request workflow: validated status transitions, agent assignment and
// client submissions.
//
// The transition graph is strictly forward. pending -> approved|denied
// for both types; visits additionally reach completed from approved.
// Every transition is a conditional UPDATE on the current status, so a
// racing admin loses the write and observes an invalid-status error
// instead of silently overwriting.
package requestlifecycle

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"imovel_hub_server/internal/dao/mysql/repository"
	myredis "imovel_hub_server/internal/dao/redis"
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/infrastructure/mq"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/random"
)

// requestLifecycleService implements service.RequestLifecycleService.
type requestLifecycleService struct {
	repos     *repository.Repositories
	publisher mq.EventPublisher
}

// NewRequestLifecycleService creates the lifecycle service.
func NewRequestLifecycleService(repos *repository.Repositories, publisher mq.EventPublisher) *requestLifecycleService {
	return &requestLifecycleService{repos: repos, publisher: publisher}
}

// Approve moves a pending request to approved.
//
// Visits record the confirmed slot: the one from the action body, or
// the first client-requested slot when the body omits it. Reservations
// claim the unit: the status flip and the availability flip run inside
// one transaction, both as conditional writes, so approval is
// all-or-nothing even under concurrent admins.
func (s *requestLifecycleService) Approve(requestType, uuid string, req request.RequestActionRequest) error {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}

	if reqType == model.TypeVisits {
		return s.approveVisit(uuid, req)
	}
	return s.approveReservation(uuid, req)
}

func (s *requestLifecycleService) approveVisit(uuid string, req request.RequestActionRequest) error {
	visit, err := s.repos.VisitRequest.FindByUuid(uuid)
	if err != nil {
		return notFoundOr(err, "visit request not found")
	}
	if visit.Status != model.StatusPending {
		return errorx.Newf(errorx.CodeInvalidStatus, "visit request is %s, only pending requests can be approved", visit.Status)
	}

	slot := req.ScheduledSlot
	if slot == nil {
		if len(visit.RequestedSlots) == 0 {
			return errorx.New(errorx.CodeInvalidParam, "visit has no requested slots; scheduled_slot is required")
		}
		slot = &visit.RequestedSlots[0]
	}

	extra := map[string]interface{}{"scheduled_slot": *slot}
	if req.AdminMsg != "" {
		extra["admin_msg"] = req.AdminMsg
	}
	rows, err := s.repos.VisitRequest.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusApproved, extra)
	if err != nil {
		return err
	}
	if rows == 0 {
		// lost the race to another admin
		return errorx.New(errorx.CodeInvalidStatus, "visit request is no longer pending")
	}

	s.afterMutation(mq.LifecycleEvent{
		Kind:        mq.EventRequestApproved,
		RequestType: string(model.TypeVisits),
		RequestID:   uuid,
		ClientEmail: visit.ClientEmail,
		AdminMsg:    req.AdminMsg,
		OccurredAt:  time.Now(),
	})
	return nil
}

func (s *requestLifecycleService) approveReservation(uuid string, req request.RequestActionRequest) error {
	reservation, err := s.repos.ReservationRequest.FindByUuid(uuid)
	if err != nil {
		return notFoundOr(err, "reservation request not found")
	}
	if reservation.Status != model.StatusPending {
		return errorx.Newf(errorx.CodeInvalidStatus, "reservation request is %s, only pending requests can be approved", reservation.Status)
	}

	// verify before write; the transaction below re-checks
	unit, err := s.repos.Unit.FindByUuid(reservation.UnitUuid)
	if err != nil {
		return notFoundOr(err, "reserved unit not found")
	}
	if !unit.IsAvailable {
		return errorx.New(errorx.CodeUnitUnavailable, "unit is no longer available")
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		extra := map[string]interface{}{}
		if req.AdminMsg != "" {
			extra["admin_msg"] = req.AdminMsg
		}
		rows, err := txRepos.ReservationRequest.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusApproved, extra)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errorx.New(errorx.CodeInvalidStatus, "reservation request is no longer pending")
		}

		rows, err = txRepos.Unit.SetAvailabilityIf(reservation.UnitUuid, true, false)
		if err != nil {
			return err
		}
		if rows == 0 {
			// another reservation claimed the unit between the check
			// and this write; roll back the status flip
			return errorx.New(errorx.CodeUnitUnavailable, "unit is no longer available")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.afterMutation(mq.LifecycleEvent{
		Kind:        mq.EventRequestApproved,
		RequestType: string(model.TypeReservations),
		RequestID:   uuid,
		ClientEmail: reservation.ClientEmail,
		AdminMsg:    req.AdminMsg,
		OccurredAt:  time.Now(),
	})
	return nil
}

// Deny moves a pending request to denied. The reason is mandatory and
// must not be blank; nothing mutates when it is missing.
func (s *requestLifecycleService) Deny(requestType, uuid, adminMsg string) error {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}
	if strings.TrimSpace(adminMsg) == "" {
		return errorx.New(errorx.CodeInvalidParam, "a denial reason is required")
	}

	var clientEmail string
	var rows int64
	var err error
	extra := map[string]interface{}{"admin_msg": adminMsg}

	if reqType == model.TypeVisits {
		visit, findErr := s.repos.VisitRequest.FindByUuid(uuid)
		if findErr != nil {
			return notFoundOr(findErr, "visit request not found")
		}
		clientEmail = visit.ClientEmail
		rows, err = s.repos.VisitRequest.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusDenied, extra)
	} else {
		reservation, findErr := s.repos.ReservationRequest.FindByUuid(uuid)
		if findErr != nil {
			return notFoundOr(findErr, "reservation request not found")
		}
		clientEmail = reservation.ClientEmail
		rows, err = s.repos.ReservationRequest.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusDenied, extra)
	}
	if err != nil {
		return err
	}
	if rows == 0 {
		return errorx.New(errorx.CodeInvalidStatus, "request is not pending")
	}

	s.afterMutation(mq.LifecycleEvent{
		Kind:        mq.EventRequestDenied,
		RequestType: string(reqType),
		RequestID:   uuid,
		ClientEmail: clientEmail,
		AdminMsg:    adminMsg,
		OccurredAt:  time.Now(),
	})
	return nil
}

// Complete moves an approved visit to completed. Reservations have no
// completed state and are rejected outright.
func (s *requestLifecycleService) Complete(requestType, uuid string) error {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}
	if reqType != model.TypeVisits {
		return errorx.New(errorx.CodeInvalidParam, "only visit requests can be completed")
	}

	visit, err := s.repos.VisitRequest.FindByUuid(uuid)
	if err != nil {
		return notFoundOr(err, "visit request not found")
	}
	rows, err := s.repos.VisitRequest.UpdateStatusIfCurrent(uuid, model.StatusApproved, model.StatusCompleted, nil)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errorx.Newf(errorx.CodeInvalidStatus, "visit request is %s, only approved visits can be completed", visit.Status)
	}

	s.afterMutation(mq.LifecycleEvent{
		Kind:        mq.EventRequestCompleted,
		RequestType: string(model.TypeVisits),
		RequestID:   uuid,
		ClientEmail: visit.ClientEmail,
		OccurredAt:  time.Now(),
	})
	return nil
}

// Delete removes a request. An approved reservation holds a unit and
// cannot be deleted; everything else may go, and assigned agents go
// with it.
func (s *requestLifecycleService) Delete(requestType, uuid string) error {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}

	var clientEmail string
	if reqType == model.TypeVisits {
		visit, err := s.repos.VisitRequest.FindByUuid(uuid)
		if err != nil {
			return notFoundOr(err, "visit request not found")
		}
		clientEmail = visit.ClientEmail
		rows, err := s.repos.VisitRequest.SoftDelete(uuid)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errorx.New(errorx.CodeNotFound, "visit request not found")
		}
	} else {
		reservation, err := s.repos.ReservationRequest.FindByUuid(uuid)
		if err != nil {
			return notFoundOr(err, "reservation request not found")
		}
		if reservation.Status == model.StatusApproved {
			return errorx.New(errorx.CodeInvalidStatus, "approved reservations hold a unit and cannot be deleted")
		}
		clientEmail = reservation.ClientEmail
		rows, err := s.repos.ReservationRequest.SoftDelete(uuid)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errorx.New(errorx.CodeNotFound, "reservation request not found")
		}
	}

	if err := s.repos.RequestAgent.DeleteByRequest(uuid, reqType); err != nil {
		zap.L().Error("delete request agents", zap.String("request_uuid", uuid), zap.Error(err))
	}

	s.afterMutation(mq.LifecycleEvent{
		Kind:        mq.EventRequestDeleted,
		RequestType: string(reqType),
		RequestID:   uuid,
		ClientEmail: clientEmail,
		OccurredAt:  time.Now(),
	})
	return nil
}

// AssignAgent snapshots an agent onto a request, appended after any
// existing assignments.
func (s *requestLifecycleService) AssignAgent(requestType, uuid, agentUuid string) error {
	reqType := model.RequestType(requestType)
	if !reqType.IsValid() {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown request type %q", requestType)
	}

	// the request must exist
	if reqType == model.TypeVisits {
		if _, err := s.repos.VisitRequest.FindByUuid(uuid); err != nil {
			return notFoundOr(err, "visit request not found")
		}
	} else {
		if _, err := s.repos.ReservationRequest.FindByUuid(uuid); err != nil {
			return notFoundOr(err, "reservation request not found")
		}
	}

	agent, err := s.repos.User.FindByUuid(agentUuid)
	if err != nil {
		return notFoundOr(err, "agent not found")
	}
	if agent.Role != model.RoleAgent {
		return errorx.Newf(errorx.CodeInvalidParam, "user %s is not an agent", agentUuid)
	}

	position, err := s.repos.RequestAgent.CountByRequest(uuid, reqType)
	if err != nil {
		return err
	}

	assignment := &model.RequestAgent{
		RequestUuid: uuid,
		RequestType: reqType,
		AgentUuid:   agent.Uuid,
		AgentName:   agent.Name,
		AgentEmail:  agent.Email,
		AgentPhone:  agent.Telephone,
		AgentCreci:  agent.Creci,
		Position:    int(position),
	}
	if err := s.repos.RequestAgent.Create(assignment); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

// SubmitVisit files a client visit request with denormalized client
// and property snapshots.
func (s *requestLifecycleService) SubmitVisit(clientUuid string, req request.CreateVisitRequest) (string, error) {
	client, err := s.repos.User.FindByUuid(clientUuid)
	if err != nil {
		return "", notFoundOr(err, "client not found")
	}
	property, err := s.repos.Property.FindByUuid(req.PropertyId)
	if err != nil {
		return "", notFoundOr(err, "property not found")
	}

	visit := &model.VisitRequest{
		Uuid:            "V" + random.GetNowAndLenRandomString(13),
		ClientUuid:      client.Uuid,
		ClientName:      client.Name,
		ClientEmail:     client.Email,
		ClientPhone:     client.Telephone,
		ClientCpf:       client.Cpf,
		PropertyUuid:    property.Uuid,
		PropertyName:    property.Name,
		PropertyAddress: property.Address(),
		Status:          model.StatusPending,
		RequestedSlots:  req.RequestedSlots,
		ClientMsg:       req.ClientMsg,
	}
	if err := s.repos.VisitRequest.Create(visit); err != nil {
		return "", err
	}

	s.invalidateListCache()
	return visit.Uuid, nil
}

// SubmitReservation files a client reservation request against a unit.
func (s *requestLifecycleService) SubmitReservation(clientUuid string, req request.CreateReservationRequest) (string, error) {
	client, err := s.repos.User.FindByUuid(clientUuid)
	if err != nil {
		return "", notFoundOr(err, "client not found")
	}
	unit, err := s.repos.Unit.FindByUuid(req.UnitId)
	if err != nil {
		return "", notFoundOr(err, "unit not found")
	}
	if !unit.IsAvailable {
		return "", errorx.New(errorx.CodeUnitUnavailable, "unit is not available")
	}
	property, err := s.repos.Property.FindByUuid(unit.PropertyUuid)
	if err != nil {
		return "", notFoundOr(err, "property not found")
	}

	reservation := &model.ReservationRequest{
		Uuid:            "R" + random.GetNowAndLenRandomString(13),
		ClientUuid:      client.Uuid,
		ClientName:      client.Name,
		ClientEmail:     client.Email,
		ClientPhone:     client.Telephone,
		ClientCpf:       client.Cpf,
		PropertyUuid:    property.Uuid,
		PropertyName:    property.Name,
		PropertyAddress: property.Address(),
		UnitUuid:        unit.Uuid,
		UnitIdentifier:  unit.Identifier,
		UnitBlock:       unit.Block,
		Status:          model.StatusPending,
		ClientMsg:       req.ClientMsg,
	}
	if err := s.repos.ReservationRequest.Create(reservation); err != nil {
		return "", err
	}

	s.invalidateListCache()
	return reservation.Uuid, nil
}

// afterMutation publishes the lifecycle event and drops stale list
// cache entries. Both are best-effort.
func (s *requestLifecycleService) afterMutation(event mq.LifecycleEvent) {
	s.publisher.Publish(event)
	s.invalidateListCache()
}

func (s *requestLifecycleService) invalidateListCache() {
	if !myredis.Enabled() {
		return
	}
	if err := myredis.DelKeysWithPattern("request_list_*"); err != nil {
		zap.L().Warn("invalidate request list cache", zap.Error(err))
	}
}

// notFoundOr converts a repository not-found into a caller-facing
// message, passing other errors through unchanged.
func notFoundOr(err error, msg string) error {
	if errorx.IsNotFound(err) {
		return errorx.New(errorx.CodeNotFound, msg)
	}
	return err
}
