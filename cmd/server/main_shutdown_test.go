package main

import (
	"net/http"
	"os"
	osSignal "os/signal"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func stubSignal(t *testing.T, sig os.Signal) {
	t.Helper()
	t.Cleanup(func() {
		signalNotify = osSignal.Notify
	})

	signalNotify = func(ch chan<- os.Signal, _ ...os.Signal) {
		go func() {
			ch <- sig
		}()
	}
}

func TestShutdownOnSignal(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGTERM, os.Interrupt} {
		t.Run(sig.String(), func(t *testing.T) {
			stubSignal(t, sig)

			server := &http.Server{}
			stopped := make(chan struct{}, 1)
			server.RegisterOnShutdown(func() {
				stopped <- struct{}{}
			})

			core, logs := observer.New(zapcore.InfoLevel)
			shutdown(server, time.Millisecond, zap.New(core))

			select {
			case <-stopped:
			case <-time.After(time.Second):
				t.Fatalf("expected server shutdown callback to execute")
			}

			if n := logs.FilterMessage("shutting down server").Len(); n != 1 {
				t.Fatalf("expected one shutdown log entry, got %d", n)
			}
			if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 0 {
				t.Fatalf("expected clean shutdown, got %d warnings", n)
			}
		})
	}
}
