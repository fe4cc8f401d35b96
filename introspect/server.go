package introspect

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sclib/scobject/object"
)

// ErrNotFound is returned (wrapped in a JSON body, never as a Go error to
// the caller) when a named object is not registered.
var ErrNotFound = errors.New("introspect: object not found")

// ZapLogger is Gin request-logging middleware, adapted from the teacher's
// cmd/zmux-server middleware of the same name.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		var errs []error
		for _, ge := range c.Errors {
			if ge.Err != nil {
				errs = append(errs, ge.Err)
			}
		}
		joinedErr := errors.Join(errs...)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}
		if joinedErr != nil {
			fields = append(fields, zap.Error(joinedErr))
		}

		switch {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// NewEngine builds the read-only introspection HTTP surface over reg:
//
//	GET /objects                     -> registered names
//	GET /objects/:name                -> write() descriptor text
//	GET /objects/:name/istype/:type   -> {"is_type": bool}
//
// Routes never mutate anything in reg or in any registered object; this is
// a debug view, not a control plane (see SPEC_FULL.md §3, Non-goals).
func NewEngine(reg *Registry, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.Use(gin.Recovery())

	if os.Getenv("ENV") == "dev" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(ZapLogger(log.Named("http")))

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/objects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"names": reg.Names()})
	})

	r.GET("/objects/:name", func(c *gin.Context) {
		o, ok := reg.Get(c.Param("name"))
		if !ok {
			_ = c.Error(ErrNotFound)
			c.JSON(http.StatusNotFound, gin.H{"message": ErrNotFound.Error()})
			return
		}

		var buf bytes.Buffer
		object.Write(o, &buf)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	})

	r.GET("/objects/:name/istype/:type", func(c *gin.Context) {
		o, ok := reg.Get(c.Param("name"))
		if !ok {
			_ = c.Error(ErrNotFound)
			c.JSON(http.StatusNotFound, gin.H{"message": ErrNotFound.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"is_type": object.IsType(o, c.Param("type"))})
	})

	return r
}
