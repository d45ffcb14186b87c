package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/server"
	"github.com/cellstrat/invoicestack/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: invoicestack <command>")
		fmt.Println("Commands:")
		fmt.Println("  server    Start the application server")
		fmt.Println("  run       Process pending invoice requests once and exit")
		os.Exit(1)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Config initialization failed: %v", err)
	}
	if cfg == nil {
		log.Fatalf("config is empty")
	}

	switch os.Args[1] {
	case "server":

		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("InvoiceStack starting up...")

		srv, err := server.NewServer(cfg)
		if err != nil {
			log.Fatalf("Server setup failed: %v", err)
		}

		if err := srv.Run(); err != nil {
			log.Fatalf("Server run failed: %v", err)
		}

	case "run":

		appLogger := logger.NewAppLogger(cfg.Logger)
		appLogger.InitLogger()

		svcs, err := services.InitServices(cfg, appLogger)
		if err != nil {
			log.Fatalf("Service initialization failed: %v", err)
		}

		result, err := svcs.OrchestratorService.Run(context.Background())
		if err != nil {
			log.Fatalf("Invoice run failed: %v", err)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode run result: %v", err)
		}
		fmt.Println(string(out))

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
