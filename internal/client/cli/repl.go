package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run reads commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	for {
		cmd, err := getSimpleText(a.reader, "command (register|login|whoami|exit)", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch cmd {
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "exit", "quit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(a.out, "Unknown command: %q\n", cmd)
			continue
		}

		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}
