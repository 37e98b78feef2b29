// Package agentapproval manages agent registration applications: a
// user files an application with their CRECI license, CPF and phone;
// an admin approves (granting the agent role) or denies it.
package agentapproval

import (
	"strings"

	"go.uber.org/zap"

	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/dto/respond"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/constants"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/brdoc"
	"imovel_hub_server/pkg/util/pagination"
	"imovel_hub_server/pkg/util/random"
)

// agentApprovalService implements service.AgentApprovalService.
type agentApprovalService struct {
	repos *repository.Repositories
}

// NewAgentApprovalService creates the agent approval service.
func NewAgentApprovalService(repos *repository.Repositories) *agentApprovalService {
	return &agentApprovalService{repos: repos}
}

// Apply files an application for the calling user. CPF and phone are
// validated and stored normalized. A user with the agent role already,
// or with a pending application, cannot file another.
func (s *agentApprovalService) Apply(userUuid string, req request.AgentApplyRequest) (string, error) {
	user, err := s.repos.User.FindByUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return "", errorx.New(errorx.CodeNotFound, "user not found")
		}
		return "", err
	}
	if user.Role == model.RoleAgent || user.Role == model.RoleAdmin {
		return "", errorx.New(errorx.CodeConflict, "user already holds the agent role")
	}

	if !brdoc.IsValidCPF(req.Cpf) {
		return "", errorx.New(errorx.CodeInvalidParam, "invalid CPF")
	}
	if !brdoc.IsValidPhone(req.Phone) {
		return "", errorx.New(errorx.CodeInvalidParam, "invalid telephone number")
	}

	if pending, err := s.repos.AgentApplication.FindPendingByUser(userUuid); err == nil && pending != nil {
		return "", errorx.New(errorx.CodeConflict, "a pending application already exists")
	} else if err != nil && !errorx.IsNotFound(err) {
		return "", err
	}

	application := &model.AgentApplication{
		Uuid:      "G" + random.GetNowAndLenRandomString(13),
		UserUuid:  user.Uuid,
		UserName:  user.Name,
		UserEmail: user.Email,
		Creci:     strings.TrimSpace(req.Creci),
		Cpf:       brdoc.FormatCPF(req.Cpf),
		Phone:     brdoc.FormatPhone(req.Phone),
		Status:    model.StatusPending,
	}
	if err := s.repos.AgentApplication.Create(application); err != nil {
		return "", err
	}
	return application.Uuid, nil
}

// List pages through applications, optionally filtered by status.
func (s *agentApprovalService) List(status, rawPage string) (*respond.AgentApplicationListRespond, error) {
	requestStatus := model.RequestStatus(status)
	if status != "" && !requestStatus.IsValidFor(model.TypeReservations) {
		// applications share the reservation status set (no completed)
		return nil, errorx.Newf(errorx.CodeInvalidParam, "unknown application status %q", status)
	}

	page := pagination.ParsePage(rawPage)
	offset := pagination.Offset(page, constants.REQUEST_PAGE_SIZE)

	applications, total, err := s.repos.AgentApplication.Search(requestStatus, offset, constants.REQUEST_PAGE_SIZE)
	if err != nil {
		zap.L().Error("list agent applications", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "application list query failed")
	}

	items := make([]respond.AgentApplicationItem, 0, len(applications))
	for _, application := range applications {
		items = append(items, respond.AgentApplicationItem{
			Id:        application.Uuid,
			Applicant: application.UserUuid,
			Name:      application.UserName,
			Email:     application.UserEmail,
			Creci:     application.Creci,
			Cpf:       application.Cpf,
			Phone:     application.Phone,
			Status:    string(application.Status),
			AdminMsg:  application.AdminMsg,
			CreatedAt: application.CreatedAt,
		})
	}

	return &respond.AgentApplicationListRespond{
		Applications: items,
		Total:        total,
		TotalPages:   pagination.TotalPages(total, constants.REQUEST_PAGE_SIZE),
	}, nil
}

// Approve grants the applicant the agent role. The status flip and the
// role promotion run in one transaction so a half-approved application
// cannot exist.
func (s *agentApprovalService) Approve(uuid string) error {
	application, err := s.repos.AgentApplication.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "application not found")
		}
		return err
	}
	if application.Status != model.StatusPending {
		return errorx.Newf(errorx.CodeInvalidStatus, "application is %s, only pending applications can be approved", application.Status)
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		rows, err := txRepos.AgentApplication.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusApproved, nil)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errorx.New(errorx.CodeInvalidStatus, "application is no longer pending")
		}
		return txRepos.User.PromoteToAgent(application.UserUuid, application.Creci)
	})
}

// Deny rejects a pending application; the reason is mandatory.
func (s *agentApprovalService) Deny(uuid, adminMsg string) error {
	if strings.TrimSpace(adminMsg) == "" {
		return errorx.New(errorx.CodeInvalidParam, "a denial reason is required")
	}

	if _, err := s.repos.AgentApplication.FindByUuid(uuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "application not found")
		}
		return err
	}

	rows, err := s.repos.AgentApplication.UpdateStatusIfCurrent(uuid, model.StatusPending, model.StatusDenied,
		map[string]interface{}{"admin_msg": adminMsg})
	if err != nil {
		return err
	}
	if rows == 0 {
		return errorx.New(errorx.CodeInvalidStatus, "application is not pending")
	}
	return nil
}
