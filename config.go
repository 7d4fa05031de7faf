package main

import (
	"encoding/json"
	"log"
	"os"
)

type Config struct {
	Port   string `json:"port"`
	DBPath string `json:"db_path"`
}

var cfg Config

func loadConfig(path string) {
	cfg = Config{
		Port:   "8000",
		DBPath: "staffdesk.db",
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("No config file found at %s, using defaults", path)
	} else {
		defer f.Close()
		json.NewDecoder(f).Decode(&cfg)
	}

	// env wins over file values
	if v := os.Getenv("STAFFDESK_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STAFFDESK_DB"); v != "" {
		cfg.DBPath = v
	}
}
