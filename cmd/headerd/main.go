package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/fastahdr/internal/config"
	"github.com/danmuck/fastahdr/internal/observability"
	"github.com/danmuck/fastahdr/internal/server"
)

func main() {
	var (
		cfgPath    string
		addr       string
		initConfig string
	)
	flag.StringVar(&cfgPath, "config", "", "path to TOML server config")
	flag.StringVar(&addr, "addr", "", "listen address override")
	flag.StringVar(&initConfig, "init-config", "", "write a server config template to the given path and exit")
	flag.Parse()

	if initConfig != "" {
		if err := config.WriteTemplate(initConfig, "server", false); err != nil {
			fmt.Fprintf(os.Stderr, "headerd: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.DefaultServerConfig()
	if cfgPath != "" {
		loaded, err := config.LoadServerConfig(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "headerd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := observability.InitLogger("headerd", cfg.LogLevel)
	svc := server.New(cfg, logger)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "headerd: %v\n", err)
		os.Exit(1)
	}
}
