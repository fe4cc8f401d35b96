// Command scobject-introspect runs a read-only HTTP view over a small
// registry of demo klasses, wiring the object runtime to the introspect
// package the way cmd/zmux-server wires its services to Gin.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/sclib/scobject/example/vehicle"
	"github.com/sclib/scobject/introspect"
	"github.com/sclib/scobject/object"
)

func main() {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("main")

	rt := object.NewRuntime(object.RuntimeOptions{Logger: log})

	reg := introspect.NewRegistry(log)

	vk := vehicle.NewVehicleKlass()
	defer vk.Unref()
	ck := vehicle.NewCarKlass(vk)
	defer ck.Unref()
	car := rt.NewFromKlass(ck, nil)
	defer car.Unref()

	reg.Register("vehicle-klass", vk)
	reg.Register("car-klass", ck)
	reg.Register("demo-car", car)

	httpserver := &http.Server{
		Addr:    "127.0.0.1:8090",
		Handler: introspect.NewEngine(reg, log),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		MaxHeaderBytes: 1 << 15,

		ErrorLog: zap.NewStdLog(log.Named("http").WithOptions(zap.AddCallerSkip(1))),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("running HTTP server on 127.0.0.1:8090")
		if err := httpserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpserver.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("server failed", zap.Error(err))
	}
}
