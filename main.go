package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/storage"
	"staffdesk/internal/store"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	seed := flag.Bool("seed", false, "seed the local document store and exit")
	dump := flag.Bool("dump", false, "print the local document store as JSON and exit")
	flag.Parse()

	// .env is optional; env vars override the config file either way
	godotenv.Load()
	loadConfig(*configPath)

	if *seed || *dump {
		maintenance(*seed, *dump)
		return
	}

	http.Handle("/", &app.Handler{
		Name:        "StaffDesk",
		Description: "Accounts, departments, employees and requests in one page",
		Styles:      []string{"/web/app.css"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("StaffDesk running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// maintenance operates on a SQLite-backed copy of the document, useful for
// inspecting or pre-seeding state without a browser.
func maintenance(seed, dump bool) {
	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

	st := store.Open(kv) // seeds defaults when the store is empty

	if seed {
		log.Printf("document store ready at %s", cfg.DBPath)
	}
	if dump {
		out, err := st.Dump()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	}
}
