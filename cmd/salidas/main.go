package main

import (
	"context"

	"github.com/faizmokh/salidas/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
