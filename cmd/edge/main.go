package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lakehire/internal/config"
	"lakehire/internal/proxy"
)

// The edge process terminates browser connections: everything under /api is
// forwarded verbatim to the backend, everything else serves the built
// frontend with an index.html fallback for client-side routes.
func main() {
	cfg := config.Load()

	p, err := proxy.New(cfg.APIURL)
	if err != nil {
		log.Fatalf("proxy init: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.Any("/api/*", p.Handle)

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
			Index: filepath.Join("index.html"),
		}))
	} else {
		log.Printf("static dir %q not found, serving API proxy only", cfg.StaticDir)
	}

	addr := "0.0.0.0:" + cfg.EdgePort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("edge start: %v", err)
	}
}
