package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/arya-analytics/whoshere"
	"github.com/arya-analytics/whoshere/internal/config"
	"github.com/cockroachdb/errors"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// parse builds the node configuration from a config file, then overlays the
// positional arguments and any flags set explicitly.
func parse(args []string) (config.Node, error) {
	flagset := flag.NewFlagSet("whoshere", flag.ContinueOnError)
	var (
		genesis     = flagset.Bool("e", false, "start a new cluster (epoch starts at 1)")
		configPath  = flagset.String("config", "", "optional YAML configuration file")
		interval    = flagset.Duration("interval", 5*time.Second, "time between gossip rounds")
		fanout      = flagset.Int("fanout", 2, "successful pushes per gossip round")
		diagnostics = flagset.String("diag", "", "listen address for /metrics and /members, empty to disable")
		debug       = flagset.Bool("debug", false, "log debug information")
	)
	flagset.Usage = usageFor(flagset, "whoshere [flags] <name> <address> <port> [neighbor host:port...]")
	if err := flagset.Parse(args); err != nil {
		return config.Node{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	pos := flagset.Args()
	switch {
	case len(pos) >= 3:
		port, err := strconv.Atoi(pos[2])
		if err != nil {
			return cfg, errors.Newf("invalid port %q", pos[2])
		}
		cfg.Name, cfg.Address, cfg.Port = pos[0], pos[1], port
		if len(pos) > 3 {
			cfg.Neighbors = pos[3:]
		}
	case len(pos) == 0 && *configPath != "":
	default:
		flagset.Usage()
		return cfg, errors.New("expected <name> <address> <port>")
	}

	flagset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "e":
			cfg.Genesis = *genesis
		case "interval":
			cfg.Interval = *interval
		case "fanout":
			cfg.Fanout = *fanout
		case "diag":
			cfg.Diagnostics = *diagnostics
		case "debug":
			cfg.Debug = *debug
		}
	})
	return cfg, cfg.Validate()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func options(cfg config.Node, logger *zap.Logger, reg prometheus.Registerer) []whoshere.Option {
	opts := []whoshere.Option{
		whoshere.WithLogger(logger),
		whoshere.WithInterval(cfg.Interval),
		whoshere.WithFanout(cfg.Fanout),
		whoshere.WithRegisterer(reg),
	}
	if cfg.Genesis {
		opts = append(opts, whoshere.Genesis())
	}
	return opts
}

func runNode(args []string) error {
	cfg, err := parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	node, err := whoshere.Open(ctx, cfg.Name, cfg.HostPort(), cfg.Seeds(), options(cfg, logger, reg)...)
	if err != nil {
		return errors.Wrap(err, "failed to start node")
	}

	var g run.Group
	{
		// Gossip until stopped.
		g.Add(node.Wait, func(error) {
			if err := node.Close(); err != nil {
				logger.Warn("failed to close node", zap.Error(err))
			}
		})
	}
	if cfg.Diagnostics != "" {
		lis, err := net.Listen("tcp", cfg.Diagnostics)
		if err != nil {
			_ = node.Close()
			return errors.Wrapf(err, "failed to bind diagnostics on %s", cfg.Diagnostics)
		}
		server := &http.Server{Handler: newRouter(node, reg), ReadHeaderTimeout: 5 * time.Second}
		logger.Info("serving diagnostics", zap.Stringer("addr", lis.Addr()))
		g.Add(func() error {
			if err := server.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(error) {
			sctx, scancel := context.WithTimeout(context.Background(), time.Second)
			defer scancel()
			_ = server.Shutdown(sctx)
		})
	}
	{
		// Listen for ctrl-C.
		sctx, scancel := context.WithCancel(context.Background())
		g.Add(func() error {
			c := make(chan os.Signal, 1)
			signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-c:
				return signalError{sig: sig}
			case <-sctx.Done():
				return sctx.Err()
			}
		}, func(error) {
			scancel()
		})
	}
	err = g.Run()
	logger.Info("stopped", zap.Error(err))
	return exitErr(err)
}

// signalError is returned by the signal actor to stop the group.
type signalError struct {
	sig os.Signal
}

func (e signalError) Error() string { return fmt.Sprintf("received signal %s", e.sig) }

// exitErr filters the group's result down to the errors that should fail the
// process. Stopping on a signal is a clean exit.
func exitErr(err error) error {
	var sigErr signalError
	if err == nil || errors.As(err, &sigErr) {
		return nil
	}
	return err
}
