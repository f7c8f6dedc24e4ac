// Package cli implements the interactive command-line client: register,
// login, and whoami against a running auth server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mkorchagin/authsvc/internal/client/client"
	"github.com/mkorchagin/authsvc/internal/common"
)

// authClient is the surface of client.GRPCClient the CLI needs.
type authClient interface {
	Register(ctx context.Context, email, name, password string) (*client.User, error)
	Login(ctx context.Context, email, password string) (*client.User, error)
	WhoAmI(ctx context.Context) (*client.User, error)
}

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	client authClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c authClient) *App {
	return &App{client: c, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Register prompts for email, name, and password and creates an account.
// The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Register(ctx, email, name, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (%s)\n", user.Email, user.ID)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

// WhoAmI verifies the current session and prints the authenticated user.
// The renewed token returned by the server is adopted by the client, so the
// session window slides forward.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.client.WhoAmI(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> id=%s\n", user.Name, user.Email, user.ID)
	return nil
}
