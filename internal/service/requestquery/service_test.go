package requestquery

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dao "imovel_hub_server/internal/dao/mysql"
	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/constants"
	"imovel_hub_server/pkg/errorx"
)

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

func seedVisits(t *testing.T, repos *repository.Repositories, n int, status model.RequestStatus) {
	t.Helper()
	for i := 0; i < n; i++ {
		visit := &model.VisitRequest{
			Uuid:           fmt.Sprintf("V240101%s%06d", status[:2], i),
			ClientUuid:     "U240101testclient1",
			ClientName:     fmt.Sprintf("Client %02d", i),
			PropertyUuid:   "P240101testprop001",
			PropertyName:   "Residencial Aurora",
			Status:         status,
			RequestedSlots: []time.Time{time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)},
		}
		if err := repos.VisitRequest.Create(visit); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	svc := NewRequestQueryService(newTestRepos(t))

	_, err := svc.List("rentals", "", "", "1")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}

func TestListRejectsStatusOutsideTypeEnum(t *testing.T) {
	svc := NewRequestQueryService(newTestRepos(t))

	// completed exists for visits but not reservations
	if _, err := svc.List("visits", "completed", "", "1"); err != nil {
		t.Fatalf("completed must be valid for visits: %v", err)
	}
	_, err := svc.List("reservations", "completed", "", "1")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}

func TestListEmptyStoreHasOnePage(t *testing.T) {
	svc := NewRequestQueryService(newTestRepos(t))

	rsp, err := svc.List("visits", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Total != 0 {
		t.Fatalf("total = %d, want 0", rsp.Total)
	}
	if rsp.TotalPages != 1 {
		t.Fatalf("total pages = %d, want 1 even when empty", rsp.TotalPages)
	}
	if rsp.Requests == nil || len(rsp.Requests) != 0 {
		t.Fatalf("requests = %v, want empty slice", rsp.Requests)
	}
}

func TestListCoercesInvalidPage(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)
	seedVisits(t, repos, 3, model.StatusPending)

	for _, raw := range []string{"", "0", "-2", "abc", "1.5"} {
		rsp, err := svc.List("visits", "", "", raw)
		if err != nil {
			t.Fatalf("page %q: %v", raw, err)
		}
		if len(rsp.Requests) != 3 {
			t.Fatalf("page %q returned %d requests, want first page of 3", raw, len(rsp.Requests))
		}
	}
}

func TestListPaginates(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)
	seedVisits(t, repos, constants.REQUEST_PAGE_SIZE+2, model.StatusPending)

	first, err := svc.List("visits", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Requests) != constants.REQUEST_PAGE_SIZE {
		t.Fatalf("page 1 size = %d, want %d", len(first.Requests), constants.REQUEST_PAGE_SIZE)
	}
	if first.TotalPages != 2 {
		t.Fatalf("total pages = %d, want 2", first.TotalPages)
	}

	second, err := svc.List("visits", "", "", "2")
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Requests) != 2 {
		t.Fatalf("page 2 size = %d, want 2", len(second.Requests))
	}
}

func TestListFiltersByStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)
	seedVisits(t, repos, 2, model.StatusPending)
	seedVisits(t, repos, 3, model.StatusDenied)

	rsp, err := svc.List("visits", "denied", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Total != 3 {
		t.Fatalf("total = %d, want 3", rsp.Total)
	}
	for _, item := range rsp.Requests {
		if item.Status != "denied" {
			t.Fatalf("item status = %s", item.Status)
		}
	}
}

func TestListSearchesClientAndPropertyNames(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)

	if err := repos.VisitRequest.Create(&model.VisitRequest{
		Uuid:         "V240101search00001",
		ClientUuid:   "U1",
		ClientName:   "Joana Prado",
		PropertyUuid: "P1",
		PropertyName: "Residencial Aurora",
		Status:       model.StatusPending,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repos.VisitRequest.Create(&model.VisitRequest{
		Uuid:         "V240101search00002",
		ClientUuid:   "U2",
		ClientName:   "Pedro Alves",
		PropertyUuid: "P2",
		PropertyName: "Condominio Horizonte",
		Status:       model.StatusPending,
	}); err != nil {
		t.Fatal(err)
	}

	// case-insensitive, matches client name
	rsp, err := svc.List("visits", "", "joana", "1")
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Total != 1 || rsp.Requests[0].Client.Name != "Joana Prado" {
		t.Fatalf("search by client: %+v", rsp.Requests)
	}

	// matches property name
	rsp, err = svc.List("visits", "", "HORIZONTE", "1")
	if err != nil {
		t.Fatal(err)
	}
	if rsp.Total != 1 || rsp.Requests[0].Property.Name != "Condominio Horizonte" {
		t.Fatalf("search by property: %+v", rsp.Requests)
	}
}

func TestListAgentsNeverNil(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)
	seedVisits(t, repos, 2, model.StatusPending)

	rsp, err := svc.List("visits", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range rsp.Requests {
		if item.Agents == nil {
			t.Fatalf("agents nil for %s, want empty slice", item.Id)
		}
	}
}

func TestListIncludesAssignedAgents(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)
	seedVisits(t, repos, 1, model.StatusPending)

	rsp, err := svc.List("visits", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	requestId := rsp.Requests[0].Id

	if err := repos.RequestAgent.Create(&model.RequestAgent{
		RequestUuid: requestId,
		RequestType: model.TypeVisits,
		AgentUuid:   "U240101testagent01",
		AgentName:   "Carlos Lima",
		AgentCreci:  "CRECI-SP 12345",
	}); err != nil {
		t.Fatal(err)
	}

	rsp, err = svc.List("visits", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	agents := rsp.Requests[0].Agents
	if len(agents) != 1 || agents[0].Name != "Carlos Lima" {
		t.Fatalf("agents = %+v", agents)
	}
}

func TestListReservationsCarriesUnit(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRequestQueryService(repos)

	if err := repos.ReservationRequest.Create(&model.ReservationRequest{
		Uuid:           "R240101testresv001",
		ClientUuid:     "U1",
		ClientName:     "Maria Souza",
		PropertyUuid:   "P1",
		PropertyName:   "Residencial Aurora",
		UnitUuid:       "N240101testunit001",
		UnitIdentifier: "302",
		UnitBlock:      "B",
		Status:         model.StatusPending,
	}); err != nil {
		t.Fatal(err)
	}

	rsp, err := svc.List("reservations", "", "", "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rsp.Requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(rsp.Requests))
	}
	unit := rsp.Requests[0].Unit
	if unit == nil || unit.Identifier != "302" || unit.Block != "B" {
		t.Fatalf("unit = %+v", unit)
	}
}
