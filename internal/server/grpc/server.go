// Package grpc exposes the AuthService over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/mkorchagin/authsvc/internal/logging"
	pb "github.com/mkorchagin/authsvc/internal/proto"
	"github.com/mkorchagin/authsvc/internal/server/services"
)

// authService is the surface of services.AuthService the transport needs.
type authService interface {
	Register(ctx context.Context, email, name, password string) (*services.Result, error)
	Login(ctx context.Context, email, password string) (*services.Result, error)
	VerifyToken(ctx context.Context, token string) (*services.Result, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, auth authService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    auth,
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
