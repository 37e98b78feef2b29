package auth

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dao "imovel_hub_server/internal/dao/mysql"
	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/jwt"
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

func init() {
	jwt.Init("test-secret-0123456789-0123456789", 30, 168)
}

func validRegistration() request.RegisterRequest {
	return request.RegisterRequest{
		Name:      "Maria Souza",
		Email:     "Maria@Example.com",
		Password:  "s3nh4-forte",
		Telephone: "11987654321",
		Cpf:       "52998224725",
	}
}

func TestRegisterNormalizesAndStores(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos)

	rsp, err := svc.Register(validRegistration())
	if err != nil {
		t.Fatal(err)
	}
	if rsp.UserId == "" || rsp.UserId[0] != 'U' {
		t.Fatalf("user id = %q", rsp.UserId)
	}

	user, err := repos.User.FindByUuid(rsp.UserId)
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "maria@example.com" {
		t.Fatalf("email = %q, want lowercased", user.Email)
	}
	if user.Cpf != "529.982.247-25" {
		t.Fatalf("cpf = %q, want formatted", user.Cpf)
	}
	if user.Telephone != "(11) 98765-4321" {
		t.Fatalf("telephone = %q, want formatted", user.Telephone)
	}
	if user.Password == "s3nh4-forte" {
		t.Fatal("password stored in plain text")
	}
}

func TestRegisterRejectsInvalidCPF(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	req := validRegistration()
	req.Cpf = "11111111111"
	_, err := svc.Register(req)
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want CodeInvalidParam", errorx.GetCode(err))
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(validRegistration())
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("code = %d, want CodeConflict", errorx.GetCode(err))
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}

	rsp, err := svc.Login(request.LoginRequest{
		Email:    "maria@example.com",
		Password: "s3nh4-forte",
	})
	if err != nil {
		t.Fatal(err)
	}
	if rsp.AccessToken == "" || rsp.RefreshToken == "" {
		t.Fatal("missing tokens")
	}

	claims, err := jwt.ParseToken(rsp.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != rsp.UserId || claims.Role != "client" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}

	_, errWrongPassword := svc.Login(request.LoginRequest{Email: "maria@example.com", Password: "wrong-pass"})
	_, errUnknownEmail := svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "wrong-pass"})

	if errorx.GetCode(errWrongPassword) != errorx.CodeUnauthorized {
		t.Fatalf("wrong password code = %d", errorx.GetCode(errWrongPassword))
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("credential errors differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestRefreshRotatesPair(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}
	login, err := svc.Login(request.LoginRequest{Email: "maria@example.com", Password: "s3nh4-forte"})
	if err != nil {
		t.Fatal(err)
	}

	refreshed, err := svc.Refresh(login.RefreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("missing rotated tokens")
	}
	if refreshed.UserId != login.UserId {
		t.Fatalf("user id changed: %s vs %s", refreshed.UserId, login.UserId)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	if _, err := svc.Register(validRegistration()); err != nil {
		t.Fatal(err)
	}
	login, err := svc.Login(request.LoginRequest{Email: "maria@example.com", Password: "s3nh4-forte"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Refresh(login.AccessToken)
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want CodeUnauthorized", errorx.GetCode(err))
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newTestRepos(t))

	_, err := svc.Refresh("not-a-token")
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("code = %d, want CodeUnauthorized", errorx.GetCode(err))
	}
}
