package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/mariotoorrees/iPowerLab/config"
	"github.com/mariotoorrees/iPowerLab/routes"
	"github.com/mariotoorrees/iPowerLab/storage"
)

func main() {
	cfg := config.Load()

	store := storage.NewMemStorage()
	store.Seed()

	r := routes.SetupRouter(cfg, store)

	// the browser client runs on a different origin in development
	handler := cors.Default().Handler(r)

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
