package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/catalogd/catalogd/config"
	"github.com/catalogd/catalogd/internal/adminapi"
	"github.com/catalogd/catalogd/internal/app"
	"github.com/catalogd/catalogd/internal/webserver"
)

var (
	h        bool
	x        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&x, "x", false, "print effective config and exit")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate the database schema")
	flag.StringVar(&conffile, "c", "catalogd.yml", "config file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		return
	}

	cfg := config.LoadConfig(conffile)
	if x {
		out, _ := yaml.Marshal(cfg)
		fmt.Println(string(out))
		return
	}
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	server := webserver.Init(application)
	adminapi.InitRouter()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zap.S().Errorf("web server shutdown error: %v", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalf("web server error: %v", err)
	}
}
