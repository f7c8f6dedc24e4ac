package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mkorchagin/authsvc/internal/common"
	pb "github.com/mkorchagin/authsvc/internal/proto"
	"github.com/mkorchagin/authsvc/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.GetEmail())

	res, err := s.auth.Register(ctx, req.GetEmail(), req.GetName(), req.GetPassword())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "email", res.User.Email, "id", res.User.ID)
	return toAuthResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	res, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return toAuthResponse(res), nil
}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.AuthResponse, error) {

	res, err := s.auth.VerifyToken(ctx, req.GetToken())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return toAuthResponse(res), nil
}

// rpcError maps service sentinels to gRPC statuses. Unknown-user and
// wrong-password failures share one status code so the code alone does not
// reveal which it was. Anything unexpected is logged in full and masked.
func (s *GRPCServer) rpcError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrUserExists):
		return status.Error(codes.AlreadyExists, common.ErrUserExists.Error())
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.Unauthenticated, common.ErrUserNotFound.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func toAuthResponse(res *services.Result) *pb.AuthResponse {
	return &pb.AuthResponse{
		User: &pb.User{
			Id:    res.User.ID,
			Email: res.User.Email,
			Name:  res.User.Name,
		},
		Token: res.Token,
	}
}
