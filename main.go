package main

import (
	"filmrating-server/confs"
	"filmrating-server/db"
	"filmrating-server/server"
	"log"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, cfg)
	srv.Start()
}
