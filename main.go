package main

import (
	"log"
	"net/http"

	"catchrush/config"
	"catchrush/game"
	"catchrush/network"
	"catchrush/room"
)

func main() {
	config.Init()

	cfg := game.DefaultConfig()
	if s := config.MatchSeconds(); s > 0 {
		cfg.MatchDuration = s
	}
	cfg.Seed = config.Seed()

	mgr := room.NewManager(cfg)
	srv := network.NewServer(mgr)

	addr := config.ListenAddr()
	log.Printf("[server] listening on %s (ws endpoint: /ws?room=CODE)", addr)
	log.Fatal(http.ListenAndServe(addr, srv.Routes()))
}
