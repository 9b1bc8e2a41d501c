package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/legalmindpro/legalmind/internal/api"
	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/config"
	"github.com/legalmindpro/legalmind/internal/llm"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("legalmind: .env file not loaded", "error", err)
	} else {
		logger.Info("legalmind: environment loaded from .env")
	}

	cfg := config.FromEnv()
	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()
	cfg.Addr = *addr

	logger.Info("legalmind: startup initiated", "addr", cfg.Addr)

	provider := llm.NewProvider(cfg)
	logger.Info("legalmind: llm provider ready", "provider", provider.Name())

	server := api.NewServer(cfg, provider)

	reachable := cfg.Addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("legalmind: server listening", "addr", cfg.Addr, "ui", "/ui/", "health", "/healthz")
	fmt.Printf("Serving on %s\n", cfg.Addr)
	logger.Info("legalmind: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(cfg.Addr, server); err != nil {
		logger.Error("legalmind: server stopped", "error", err)
		fmt.Println("server stopped:", err)
		os.Exit(1)
	}
}
