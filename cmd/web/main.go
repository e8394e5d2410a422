// Web server for go-matal
package main

import (
	"flag"
	"log"
	"time"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-matal/internal/config"
	"github.com/go-while/go-matal/internal/store"
	"github.com/go-while/go-matal/internal/web"
	"github.com/joho/godotenv"
)

var appVersion = "-unset-" // will be set at build time

var Prof *prof.Profiler

func main() {
	var (
		webport     int
		webssl      bool
		webcertFile string
		webkeyFile  string
		dataFile    string
		pprofWeb    string
	)
	flag.IntVar(&webport, "webport", 0, "Web server port (default: 11980)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.StringVar(&dataFile, "datafile", "", "Path to the proverbs JSON file (default: data/proverbs.json)")
	flag.StringVar(&pprofWeb, "pprofweb", "", "Launch pprof web server on this addr (e.g. :51111)")
	flag.Parse()

	config.AppVersion = appVersion
	log.Printf("Starting go-matal web server (version: %s)", appVersion)

	// .env is optional, environment variables win over defaults and
	// command-line flags win over both
	if err := godotenv.Load(); err == nil {
		log.Printf("[WEB]: Loaded environment from .env")
	}

	mainConfig := config.NewDefaultConfig()
	mainConfig.ApplyEnv()
	webConfig := &mainConfig.Web

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
	}
	if dataFile != "" {
		mainConfig.Store.DataFile = dataFile
		log.Printf("[WEB]: Overriding data file with command-line flag: %s", mainConfig.Store.DataFile)
	}

	// Validate port
	if webConfig.ListenPort < 1024 || webConfig.ListenPort > 65535 {
		log.Fatalf("[WEB]: Invalid port number: %d (must be between 1024 and 65535)", webConfig.ListenPort)
	}

	if pprofWeb != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofWeb)
		Prof.StartMemProfile(5*time.Minute, 30*time.Second)
		log.Printf("[WEB]: pprof web server listening on %s", pprofWeb)
	}

	st := store.NewStore(mainConfig.Store.DataFile)
	if err := st.Initialize(); err != nil {
		log.Fatalf("[WEB]: Failed to initialize proverb store at %s: %v", mainConfig.Store.DataFile, err)
	}
	log.Printf("[WEB]: Using proverb store: %s", mainConfig.Store.DataFile)

	server := web.NewServer(st, webConfig)
	if err := server.Start(); err != nil {
		log.Fatalf("[WEB]: Web server failed: %v", err)
	}
}
