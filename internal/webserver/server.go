package webserver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/catalogd/catalogd/internal/app"
)

// DBContextKey is where the request-scoped gorm handle lives in the echo
// context; handlers fetch it instead of reaching for a global.
const DBContextKey = "catalogd_gorm_db"

type WebServer struct {
	appctx *app.Application
	root   *echo.Echo
}

var server *WebServer

// Init creates the package-level server instance route registration
// helpers attach to.
func Init(appctx *app.Application) *WebServer {
	server = NewWebServer(appctx)
	return server
}

func NewWebServer(appctx *app.Application) *WebServer {
	s := &WebServer{appctx: appctx, root: echo.New()}
	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.JSONSerializer = NewJsoniterSerializer()
	s.root.Validator = NewWebValidator()
	s.root.Pre(middleware.RemoveTrailingSlash())
	s.root.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.root.Use(middleware.Recover())
	s.root.Use(ZapLogger())
	s.root.Use(s.injectDB())
	return s
}

// injectDB makes the application's database handle available to handlers,
// bound to the request context.
func (s *WebServer) injectDB() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(DBContextKey, s.appctx.DB().WithContext(c.Request().Context()))
			return next(c)
		}
	}
}

func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) Start() error {
	cfg := s.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("starting web server on %s", addr)
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// Route registration helpers, mirrored by handler packages.

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(path, h)
}
