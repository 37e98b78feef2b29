package requestlifecycle

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dao "imovel_hub_server/internal/dao/mysql"
	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/infrastructure/mq"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/errorx"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []mq.LifecycleEvent
}

func (p *recordingPublisher) Publish(event mq.LifecycleEvent) {
	p.events = append(p.events, event)
}

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := dao.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return repository.NewRepositories(db)
}

func seedClient(t *testing.T, repos *repository.Repositories) *model.UserInfo {
	t.Helper()
	user := &model.UserInfo{
		Uuid:      "U240101testclient1",
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		Password:  "x",
		Telephone: "(11) 98765-4321",
		Cpf:       "529.982.247-25",
		Role:      model.RoleClient,
	}
	if err := repos.User.Create(user); err != nil {
		t.Fatal(err)
	}
	return user
}

func seedProperty(t *testing.T, repos *repository.Repositories) *model.Property {
	t.Helper()
	property := &model.Property{
		Uuid:   "P240101testprop001",
		Name:   "Residencial Aurora",
		Street: "Rua das Flores",
		Number: "120",
		City:   "Campinas",
		State:  "SP",
	}
	if err := repos.Property.Create(property); err != nil {
		t.Fatal(err)
	}
	return property
}

func seedUnit(t *testing.T, repos *repository.Repositories, propertyUuid string, available bool) *model.Unit {
	t.Helper()
	unit := &model.Unit{
		Uuid:         "N240101testunit001",
		PropertyUuid: propertyUuid,
		Identifier:   "302",
		Block:        "B",
		Price:        45000000,
		IsAvailable:  available,
	}
	if err := repos.Unit.Create(unit); err != nil {
		t.Fatal(err)
	}
	return unit
}

func seedVisit(t *testing.T, repos *repository.Repositories, status model.RequestStatus, slots ...time.Time) *model.VisitRequest {
	t.Helper()
	visit := &model.VisitRequest{
		Uuid:            fmt.Sprintf("V240101%013d", len(slots)),
		ClientUuid:      "U240101testclient1",
		ClientName:      "Maria Souza",
		ClientEmail:     "maria@example.com",
		PropertyUuid:    "P240101testprop001",
		PropertyName:    "Residencial Aurora",
		PropertyAddress: "Rua das Flores, 120 - Campinas/SP",
		Status:          status,
		RequestedSlots:  slots,
	}
	if err := repos.VisitRequest.Create(visit); err != nil {
		t.Fatal(err)
	}
	return visit
}

func seedReservation(t *testing.T, repos *repository.Repositories, status model.RequestStatus, unitUuid string) *model.ReservationRequest {
	t.Helper()
	reservation := &model.ReservationRequest{
		Uuid:           "R240101testresv001",
		ClientUuid:     "U240101testclient1",
		ClientName:     "Maria Souza",
		ClientEmail:    "maria@example.com",
		PropertyUuid:   "P240101testprop001",
		PropertyName:   "Residencial Aurora",
		UnitUuid:       unitUuid,
		UnitIdentifier: "302",
		Status:         status,
	}
	if err := repos.ReservationRequest.Create(reservation); err != nil {
		t.Fatal(err)
	}
	return reservation
}

func TestApproveVisitDefaultsToFirstSlot(t *testing.T) {
	repos := newTestRepos(t)
	publisher := &recordingPublisher{}
	svc := NewRequestLifecycleService(repos, publisher)

	first := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)
	visit := seedVisit(t, repos, model.StatusPending, first, second)

	err := svc.Approve(string(model.TypeVisits), visit.Uuid, request.RequestActionRequest{Action: "approve"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := repos.VisitRequest.FindByUuid(visit.Uuid)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusApproved {
		t.Fatalf("status = %s, want approved", got.Status)
	}
	if got.ScheduledSlot == nil || !got.ScheduledSlot.Equal(first) {
		t.Fatalf("scheduled slot = %v, want %v", got.ScheduledSlot, first)
	}
	if len(publisher.events) != 1 || publisher.events[0].Kind != mq.EventRequestApproved {
		t.Fatalf("events = %+v, want one approved event", publisher.events)
	}
}

func TestApproveVisitWithExplicitSlot(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	first := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)
	visit := seedVisit(t, repos, model.StatusPending, first, second)

	err := svc.Approve(string(model.TypeVisits), visit.Uuid, request.RequestActionRequest{
		Action:        "approve",
		ScheduledSlot: &second,
		AdminMsg:      "confirmed for Thursday",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, _ := repos.VisitRequest.FindByUuid(visit.Uuid)
	if got.ScheduledSlot == nil || !got.ScheduledSlot.Equal(second) {
		t.Fatalf("scheduled slot = %v, want %v", got.ScheduledSlot, second)
	}
	if got.AdminMsg != "confirmed for Thursday" {
		t.Fatalf("admin msg = %q", got.AdminMsg)
	}
}

func TestApproveNonPendingVisitFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusDenied, time.Now())

	err := svc.Approve(string(model.TypeVisits), visit.Uuid, request.RequestActionRequest{Action: "approve"})
	if errorx.GetCode(err) != errorx.CodeInvalidStatus {
		t.Fatalf("code = %d, want CodeInvalidStatus", errorx.GetCode(err))
	}
}

func TestApproveMissingRequestIsNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	err := svc.Approve(string(model.TypeVisits), "V000000000000000000", request.RequestActionRequest{Action: "approve"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want CodeNotFound", errorx.GetCode(err))
	}
}

func TestApproveReservationClaimsUnit(t *testing.T) {
	repos := newTestRepos(t)
	publisher := &recordingPublisher{}
	svc := NewRequestLifecycleService(repos, publisher)

	property := seedProperty(t, repos)
	unit := seedUnit(t, repos, property.Uuid, true)
	reservation := seedReservation(t, repos, model.StatusPending, unit.Uuid)

	err := svc.Approve(string(model.TypeReservations), reservation.Uuid, request.RequestActionRequest{Action: "approve"})
	if err != nil {
		t.Fatal(err)
	}

	gotUnit, _ := repos.Unit.FindByUuid(unit.Uuid)
	if gotUnit.IsAvailable {
		t.Fatal("unit still available after reservation approval")
	}
	gotReservation, _ := repos.ReservationRequest.FindByUuid(reservation.Uuid)
	if gotReservation.Status != model.StatusApproved {
		t.Fatalf("status = %s, want approved", gotReservation.Status)
	}
}

func TestApproveReservationOnUnavailableUnitFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	property := seedProperty(t, repos)
	unit := seedUnit(t, repos, property.Uuid, false)
	reservation := seedReservation(t, repos, model.StatusPending, unit.Uuid)

	err := svc.Approve(string(model.TypeReservations), reservation.Uuid, request.RequestActionRequest{Action: "approve"})
	if errorx.GetCode(err) != errorx.CodeUnitUnavailable {
		t.Fatalf("code = %d, want CodeUnitUnavailable", errorx.GetCode(err))
	}

	// the status flip must have rolled back
	got, _ := repos.ReservationRequest.FindByUuid(reservation.Uuid)
	if got.Status != model.StatusPending {
		t.Fatalf("status = %s, want pending after failed approval", got.Status)
	}
}

func TestDenyRequiresReason(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusPending, time.Now())

	err := svc.Deny(string(model.TypeVisits), visit.Uuid, "   ")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}

	got, _ := repos.VisitRequest.FindByUuid(visit.Uuid)
	if got.Status != model.StatusPending {
		t.Fatal("blank reason must not mutate the request")
	}
}

func TestDenyRecordsReason(t *testing.T) {
	repos := newTestRepos(t)
	publisher := &recordingPublisher{}
	svc := NewRequestLifecycleService(repos, publisher)

	visit := seedVisit(t, repos, model.StatusPending, time.Now())

	if err := svc.Deny(string(model.TypeVisits), visit.Uuid, "no availability this month"); err != nil {
		t.Fatal(err)
	}

	got, _ := repos.VisitRequest.FindByUuid(visit.Uuid)
	if got.Status != model.StatusDenied {
		t.Fatalf("status = %s, want denied", got.Status)
	}
	if got.AdminMsg != "no availability this month" {
		t.Fatalf("admin msg = %q", got.AdminMsg)
	}
	if len(publisher.events) != 1 || publisher.events[0].Kind != mq.EventRequestDenied {
		t.Fatalf("events = %+v, want one denied event", publisher.events)
	}
}

func TestCompleteApprovedVisit(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusApproved, time.Now())

	if err := svc.Complete(string(model.TypeVisits), visit.Uuid); err != nil {
		t.Fatal(err)
	}
	got, _ := repos.VisitRequest.FindByUuid(visit.Uuid)
	if got.Status != model.StatusCompleted {
		t.Fatalf("status = %s, want completed", got.Status)
	}
}

func TestCompletePendingVisitFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusPending, time.Now())

	err := svc.Complete(string(model.TypeVisits), visit.Uuid)
	if errorx.GetCode(err) != errorx.CodeInvalidStatus {
		t.Fatalf("code = %d, want CodeInvalidStatus", errorx.GetCode(err))
	}
}

func TestCompleteReservationIsRejected(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	err := svc.Complete(string(model.TypeReservations), "R240101testresv001")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}

func TestDeleteApprovedReservationIsRefused(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	property := seedProperty(t, repos)
	unit := seedUnit(t, repos, property.Uuid, false)
	reservation := seedReservation(t, repos, model.StatusApproved, unit.Uuid)

	err := svc.Delete(string(model.TypeReservations), reservation.Uuid)
	if errorx.GetCode(err) != errorx.CodeInvalidStatus {
		t.Fatalf("code = %d, want CodeInvalidStatus", errorx.GetCode(err))
	}
}

func TestDeleteRemovesRequestAndAssignments(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusPending, time.Now())
	if err := repos.RequestAgent.Create(&model.RequestAgent{
		RequestUuid: visit.Uuid,
		RequestType: model.TypeVisits,
		AgentUuid:   "U240101testagent01",
		AgentName:   "Carlos Lima",
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(string(model.TypeVisits), visit.Uuid); err != nil {
		t.Fatal(err)
	}

	if _, err := repos.VisitRequest.FindByUuid(visit.Uuid); !errorx.IsNotFound(err) {
		t.Fatal("request still findable after delete")
	}
	agents, err := repos.RequestAgent.FindByRequest(visit.Uuid, model.TypeVisits)
	if err != nil {
		t.Fatal(err)
	}
	if len(agents) != 0 {
		t.Fatalf("assignments remain after delete: %d", len(agents))
	}
}

func TestDeleteMissingRequestIsNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	err := svc.Delete(string(model.TypeVisits), "V000000000000000000")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("code = %d, want CodeNotFound", errorx.GetCode(err))
	}
}

func TestAssignAgentSnapshotsAndOrders(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusPending, time.Now())
	agent := &model.UserInfo{
		Uuid:     "U240101testagent01",
		Name:     "Carlos Lima",
		Email:    "carlos@example.com",
		Password: "x",
		Role:     model.RoleAgent,
		Creci:    "CRECI-SP 12345",
	}
	if err := repos.User.Create(agent); err != nil {
		t.Fatal(err)
	}

	if err := svc.AssignAgent(string(model.TypeVisits), visit.Uuid, agent.Uuid); err != nil {
		t.Fatal(err)
	}

	assignments, err := repos.RequestAgent.FindByRequest(visit.Uuid, model.TypeVisits)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignments) != 1 {
		t.Fatalf("assignments = %d, want 1", len(assignments))
	}
	if assignments[0].AgentName != "Carlos Lima" || assignments[0].AgentCreci != "CRECI-SP 12345" {
		t.Fatalf("snapshot = %+v", assignments[0])
	}
	if assignments[0].Position != 0 {
		t.Fatalf("position = %d, want 0", assignments[0].Position)
	}
}

func TestAssignNonAgentUserFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	visit := seedVisit(t, repos, model.StatusPending, time.Now())
	client := seedClient(t, repos)

	err := svc.AssignAgent(string(model.TypeVisits), visit.Uuid, client.Uuid)
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}

func TestSubmitVisitSnapshotsClientAndProperty(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	client := seedClient(t, repos)
	property := seedProperty(t, repos)

	slot := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	requestId, err := svc.SubmitVisit(client.Uuid, request.CreateVisitRequest{
		PropertyId:     property.Uuid,
		RequestedSlots: []time.Time{slot},
		ClientMsg:      "prefer mornings",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := repos.VisitRequest.FindByUuid(requestId)
	if err != nil {
		t.Fatal(err)
	}
	if got.ClientName != client.Name || got.ClientCpf != client.Cpf {
		t.Fatalf("client snapshot = %+v", got)
	}
	if got.PropertyAddress != property.Address() {
		t.Fatalf("property address = %q, want %q", got.PropertyAddress, property.Address())
	}
	if got.Status != model.StatusPending {
		t.Fatalf("status = %s, want pending", got.Status)
	}
}

func TestSubmitReservationOnUnavailableUnitFails(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	client := seedClient(t, repos)
	property := seedProperty(t, repos)
	unit := seedUnit(t, repos, property.Uuid, false)

	_, err := svc.SubmitReservation(client.Uuid, request.CreateReservationRequest{UnitId: unit.Uuid})
	if errorx.GetCode(err) != errorx.CodeUnitUnavailable {
		t.Fatalf("code = %d, want CodeUnitUnavailable", errorx.GetCode(err))
	}
}

func TestUnknownRequestTypeIsRejected(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestLifecycleService(repos, &recordingPublisher{})

	if err := svc.Deny("rentals", "whatever", "reason"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}
