package main

import (
	"context"
	"os"

	"github.com/angristan/hypr-scene/internal/cli"
)

func main() {
	c := cli.New(os.Stdout, os.Stderr, os.Getenv)
	os.Exit(c.Run(context.Background(), os.Args[1:]))
}
