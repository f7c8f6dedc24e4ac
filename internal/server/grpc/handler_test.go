package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mkorchagin/authsvc/internal/common"
	pb "github.com/mkorchagin/authsvc/internal/proto"
	"github.com/mkorchagin/authsvc/internal/server/models"
	"github.com/mkorchagin/authsvc/internal/server/services"
)

// ---- fakes ----

type fakeAuth struct {
	registerResp *services.Result
	registerErr  error

	loginResp *services.Result
	loginErr  error

	verifyResp *services.Result
	verifyErr  error
}

func (f *fakeAuth) Register(ctx context.Context, email, name, password string) (*services.Result, error) {
	return f.registerResp, f.registerErr
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.Result, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (*services.Result, error) {
	return f.verifyResp, f.verifyErr
}

// ---- helpers ----

func okResult() *services.Result {
	return &services.Result{
		User:  &models.User{ID: "42", Email: "a@x.com", Name: "A"},
		Token: "tok",
	}
}

func newServer(a authService) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		auth:    a,
		logger:  nopLogger{},
	}
}

func wantStatus(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%v)", code, st.Code(), err)
	}
	return st
}

// ---- tests ----

func TestRegister_OK(t *testing.T) {
	s := newServer(&fakeAuth{registerResp: okResult()})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@x.com", Name: "A", Password: "pw1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUser().GetEmail() != "a@x.com" || resp.GetUser().GetId() != "42" {
		t.Fatalf("unexpected user: %+v", resp.GetUser())
	}
	if resp.GetToken() != "tok" {
		t.Fatalf("unexpected token: %q", resp.GetToken())
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	s := newServer(&fakeAuth{registerErr: common.ErrUserExists})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@x.com", Name: "A", Password: "pw1"})
	wantStatus(t, err, codes.AlreadyExists)
}

func TestRegister_Internal_MasksDetail(t *testing.T) {
	s := newServer(&fakeAuth{registerErr: errors.New("pg: connection refused at 10.0.0.5")})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@x.com"})
	st := wantStatus(t, err, codes.Internal)
	if st.Message() != "internal error" {
		t.Fatalf("internal detail leaked to client: %q", st.Message())
	}
}

func TestLogin_OK(t *testing.T) {
	s := newServer(&fakeAuth{loginResp: okResult()})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetToken() != "tok" {
		t.Fatalf("unexpected token: %q", resp.GetToken())
	}
}

func TestLogin_FailuresShareStatusCode(t *testing.T) {
	unknown := newServer(&fakeAuth{loginErr: common.ErrUserNotFound})
	_, err := unknown.Login(context.Background(), &pb.LoginRequest{Email: "missing@x.com", Password: "pw1"})
	stUnknown := wantStatus(t, err, codes.Unauthenticated)

	wrong := newServer(&fakeAuth{loginErr: common.ErrInvalidCredentials})
	_, err = wrong.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "bad"})
	stWrong := wantStatus(t, err, codes.Unauthenticated)

	// message text may differ, the code must not
	if stUnknown.Code() != stWrong.Code() {
		t.Fatalf("status codes differ: %v vs %v", stUnknown.Code(), stWrong.Code())
	}
}

func TestVerifyToken_OK(t *testing.T) {
	s := newServer(&fakeAuth{verifyResp: okResult()})

	resp, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "old"})
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if resp.GetUser().GetEmail() != "a@x.com" || resp.GetToken() != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	s := newServer(&fakeAuth{verifyErr: common.ErrInvalidToken})

	_, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "garbage"})
	wantStatus(t, err, codes.Unauthenticated)
}
