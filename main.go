package main

import (
	"github.com/projetprice/formation-svc/config"
	"github.com/projetprice/formation-svc/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
