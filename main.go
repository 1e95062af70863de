package main

import (
	"context"
	"log"

	"booking-service/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("booking-service: %v", err)
	}
}
