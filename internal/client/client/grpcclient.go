// Package client implements the gRPC client for the auth service. It keeps
// the current session token and transparently adopts the renewed token the
// server returns on every successful verification.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/mkorchagin/authsvc/internal/proto"
)

// User is the caller-visible account: no credential material.
type User struct {
	ID    string
	Email string
	Name  string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	token       string
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewAuthServiceClient(conn),
	}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Token returns the current session token, empty before login/registration.
func (c *GRPCClient) Token() string {
	return c.token
}

// Register creates an account and stores the issued session token.
func (c *GRPCClient) Register(ctx context.Context, email, name, password string) (*User, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Email: email, Name: name, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return c.adopt(resp), nil
}

// Login authenticates and stores the issued session token.
func (c *GRPCClient) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return c.adopt(resp), nil
}

// WhoAmI verifies the stored token. The server re-issues a fresh token on
// every successful verification; the client adopts it, so periodic WhoAmI
// calls keep the session alive.
func (c *GRPCClient) WhoAmI(ctx context.Context) (*User, error) {
	if c.token == "" {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: c.token})
	if err != nil {
		return nil, mapError(err)
	}
	return c.adopt(resp), nil
}

func (c *GRPCClient) adopt(resp *pb.AuthResponse) *User {
	c.token = resp.GetToken()
	u := resp.GetUser()
	return &User{ID: u.GetId(), Email: u.GetEmail(), Name: u.GetName()}
}

func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyRegistered
	default:
		return err
	}
}
