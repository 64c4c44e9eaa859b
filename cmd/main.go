package main

import (
	"log"

	_ "time/tzdata"

	"github.com/shingu-dev/club-server/cmd/server"
	"github.com/shingu-dev/club-server/internal/adapters/config"
)

func main() {
	cfg := config.Get()

	srv, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	srv.Start()
}
