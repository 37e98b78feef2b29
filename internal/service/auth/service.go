// Package auth handles registration, login and refresh-token rotation.
// Each user has at most one live refresh session: the token id of the
// latest refresh token is pinned in Redis, so a new login or refresh
// invalidates every older refresh token.
package auth

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"imovel_hub_server/internal/dao/mysql/repository"
	myredis "imovel_hub_server/internal/dao/redis"
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/dto/respond"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/constants"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/brdoc"
	"imovel_hub_server/pkg/util/jwt"
	"imovel_hub_server/pkg/util/password"
	"imovel_hub_server/pkg/util/random"
)

// authService implements service.AuthService.
type authService struct {
	repos *repository.Repositories
}

// NewAuthService creates the auth service.
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// Register creates a client account. CPF and telephone are validated
// here rather than in the binder so the failures carry business codes,
// and both are stored normalized.
func (s *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if !brdoc.IsValidCPF(req.Cpf) {
		return nil, errorx.New(errorx.CodeInvalidParam, "invalid CPF")
	}
	if !brdoc.IsValidPhone(req.Telephone) {
		return nil, errorx.New(errorx.CodeInvalidParam, "invalid telephone number")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.repos.User.FindByEmail(email); err == nil && existing != nil {
		return nil, errorx.New(errorx.CodeConflict, "email already registered")
	} else if err != nil && !errorx.IsNotFound(err) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		zap.L().Error("hash password", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeInternal, "could not process password")
	}

	user := &model.UserInfo{
		Uuid:      "U" + random.GetNowAndLenRandomString(11),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Telephone: brdoc.FormatPhone(req.Telephone),
		Cpf:       brdoc.FormatCPF(req.Cpf),
		Role:      model.RoleClient,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}

	return &respond.RegisterRespond{UserId: user.Uuid}, nil
}

// Login verifies credentials and issues a fresh token pair. Wrong
// email and wrong password return the same error so the endpoint does
// not leak which accounts exist.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "account is disabled")
	}
	if !password.Verify(user.Password, req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid email or password")
	}

	return s.issueTokenPair(user)
}

// Refresh validates a refresh token against the pinned session and
// rotates the pair. A token whose id no longer matches the pin has
// been superseded and is rejected.
func (s *authService) Refresh(refreshToken string) (*respond.LoginRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}

	if myredis.Enabled() {
		pinned, err := myredis.GetKeyNilIsErr(sessionKey(claims.UserID))
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeUnauthorized, "session expired, log in again")
			}
			return nil, err
		}
		if pinned != claims.TokenID {
			return nil, errorx.New(errorx.CodeUnauthorized, "refresh token superseded by a newer session")
		}
	}

	user, err := s.repos.User.FindByUuid(claims.UserID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "account no longer exists")
		}
		return nil, err
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "account is disabled")
	}

	return s.issueTokenPair(user)
}

func (s *authService) issueTokenPair(user *model.UserInfo) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(user.Uuid, user.Role)
	if err != nil {
		zap.L().Error("issue access token", zap.String("user_uuid", user.Uuid), zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeInternal, "could not issue tokens")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.Uuid, user.Role)
	if err != nil {
		zap.L().Error("issue refresh token", zap.String("user_uuid", user.Uuid), zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeInternal, "could not issue tokens")
	}

	if myredis.Enabled() {
		expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
		if err := myredis.SetKeyEx(sessionKey(user.Uuid), tokenID, expiry); err != nil {
			zap.L().Error("pin refresh session", zap.String("user_uuid", user.Uuid), zap.Error(err))
			return nil, err
		}
	}

	return &respond.LoginRespond{
		UserId:       user.Uuid,
		Name:         user.Name,
		Role:         user.Role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func sessionKey(userUuid string) string {
	return fmt.Sprintf("refresh_session:%s", userUuid)
}
