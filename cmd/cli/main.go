package main

import (
	"context"
	"flag"
	"log"

	"github.com/mkorchagin/authsvc/internal/client/cli"
	"github.com/mkorchagin/authsvc/internal/client/client"
)

func main() {

	addr := flag.String("a", "127.0.0.1:50051", "auth server address")
	flag.Parse()

	c, err := client.NewGRPCClient(*addr)
	if err != nil {
		log.Fatalf("client init error: %v", err)
	}
	defer c.Close()

	app := cli.NewApp(c)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
