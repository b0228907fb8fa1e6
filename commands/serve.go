// Copyright 2025 CardinalHQ, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"

	"github.com/cardinalhq/tsgraph/pkg/chart"
	"github.com/cardinalhq/tsgraph/pkg/httpx"
	"github.com/cardinalhq/tsgraph/pkg/metrics"
	"github.com/cardinalhq/tsgraph/pkg/router"
)

const shutdownTimeout = 5 * time.Second

type ServeOptions struct {
	Listen   string
	PagePath string
	Context  *chart.Context
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Out      io.Writer

	// Open, when set, is called with the page URL once the server listens.
	Open func(url string) error
}

// Serve runs the page server until ctx is done or SIGINT/SIGTERM arrives.
func Serve(ctx context.Context, o ServeOptions) error {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	if o.Out == nil {
		o.Out = io.Discard
	}

	mux := router.SetupRoutes(o.PagePath, o.Context, o.Metrics, o.Logger)
	srv := httpx.NewServer(o.Listen, mux, o.Logger)

	var g run.Group
	g.Add(srv.Start, func(error) {
		if err := srv.Stop(shutdownTimeout); err != nil {
			o.Logger.Error("http server shutdown error", "error", err)
		}
	})

	announceCtx, cancelAnnounce := context.WithCancel(ctx)
	g.Add(func() error {
		addr, err := srv.Addr(announceCtx)
		if err != nil {
			return nil
		}
		url := pageURL(addr)
		fmt.Fprintf(o.Out, "Visit the newly generated graph of timestamps at URL: %s\n", url)
		if o.Open != nil {
			if err := o.Open(url); err != nil {
				o.Logger.Warn("cannot launch web browser", "error", err)
			}
		}
		<-announceCtx.Done()
		return nil
	}, func(error) {
		cancelAnnounce()
	})

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	g.Add(func() error {
		<-sigCtx.Done()
		o.Logger.Info("shutting down page server")
		return nil
	}, func(error) {
		stop()
	})

	return g.Run()
}

func pageURL(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d/", tcp.Port)
	}
	return "http://" + addr.String() + "/"
}
