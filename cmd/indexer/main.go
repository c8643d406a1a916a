package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/account"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/address"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/gateway"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/indexer"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/node"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/processor"
	sigs "github.com/goodnatureofminers/blockinsight7000-lisk/internal/signal"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/sink/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage/postgres"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/workerpool"
)

type config struct {
	PostgresDSN      string        `long:"postgres-dsn" env:"LISK_INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN" required:"true"`
	PostgresMaxConns int32         `long:"postgres-max-conns" env:"LISK_INDEXER_POSTGRES_MAX_CONNS" description:"PostgreSQL pool size" default:"16"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"LISK_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN, analytics sink is disabled when empty"`
	Network          string        `long:"network" env:"LISK_INDEXER_NETWORK" description:"network name used in metric labels" default:"mainnet"`
	NodeURL          string        `long:"node-url" env:"LISK_INDEXER_NODE_URL" description:"Lisk node websocket RPC URL" default:"ws://127.0.0.1:7887/rpc-ws"`
	NodeRPS          int           `long:"node-rps" env:"LISK_INDEXER_NODE_RPS" description:"node RPC calls per second, 0 for unlimited" default:"50"`
	MetricsAddr      string        `long:"metrics-addr" env:"LISK_INDEXER_METRICS_ADDR" description:"prometheus listen address" default:":9100"`
	LogDevelopment   bool          `long:"log-development" env:"LISK_INDEXER_LOG_DEVELOPMENT" description:"human readable debug logging"`
	AddressCacheSize int           `long:"address-cache-size" env:"LISK_INDEXER_ADDRESS_CACHE_SIZE" description:"public key to address cache entries" default:"100000"`
	RefreshInterval  time.Duration `long:"refresh-interval" env:"LISK_INDEXER_REFRESH_INTERVAL" description:"account refresh interval" default:"10s"`
	RefreshBatchSize int           `long:"refresh-batch-size" env:"LISK_INDEXER_REFRESH_BATCH_SIZE" description:"accounts refreshed per kind and interval" default:"64"`
	AccountFlushRPS  int           `long:"account-flush-rps" env:"LISK_INDEXER_ACCOUNT_FLUSH_RPS" description:"direct account update flushes per second, 0 for unlimited" default:"20"`
	GenesisAssets    string        `long:"genesis-assets" env:"LISK_INDEXER_GENESIS_ASSETS" description:"genesis assets JSON seeding an empty accounts table"`
	JobWorkers       int           `long:"job-workers" env:"LISK_INDEXER_JOB_WORKERS" description:"workers of the missing height pool" default:"4"`
	JobAttempts      uint64        `long:"job-attempts" env:"LISK_INDEXER_JOB_ATTEMPTS" description:"attempts per job" default:"5"`
	JobTimeout       time.Duration `long:"job-timeout" env:"LISK_INDEXER_JOB_TIMEOUT" description:"timeout of one job attempt" default:"5m"`
	StatusInterval   time.Duration `long:"status-interval" env:"LISK_INDEXER_STATUS_INTERVAL" description:"job queue status log interval" default:"60s"`
	GapInterval      time.Duration `long:"gap-interval" env:"LISK_INDEXER_GAP_INTERVAL" description:"missing height scan interval" default:"1m"`
	GapLimit         int           `long:"gap-limit" env:"LISK_INDEXER_GAP_LIMIT" description:"missing heights queued per scan" default:"1000"`
	TipDepth         uint64        `long:"tip-depth" env:"LISK_INDEXER_TIP_DEPTH" description:"stored blocks compared with the node per reconciliation" default:"100"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogDevelopment)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("lisk indexer failed", zap.Error(err))
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	store, err := postgres.NewStore(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns, metrics.NewStorage("postgres"))
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer store.Close()

	addresses, err := address.NewCache(cfg.AddressCacheSize)
	if err != nil {
		return err
	}

	var gw *gateway.Gateway
	session := node.NewSession(node.SessionConfig{
		URL:    cfg.NodeURL,
		Topics: []string{node.TopicNewBlock, node.TopicDeleteBlock, node.TopicValidatorsChanged},
	}, func(n node.Notification) {
		gw.Notify(n)
	}, metrics.NewNodeClient(cfg.Network), logger)
	client := node.NewClient(session, addresses, metrics.NewNodeClient(cfg.Network), cfg.NodeRPS)

	state := chainstate.New(client, 0, logger)
	if err := state.LoadLastIndexedBlock(ctx, store); err != nil {
		return err
	}

	registry, err := processor.Default()
	if err != nil {
		return fmt.Errorf("build processor registry: %w", err)
	}

	jobs := workerpool.Config{Attempts: cfg.JobAttempts, AttemptTimeout: cfg.JobTimeout}
	jobMetrics := func(pool string) workerpool.Metrics {
		return metrics.NewJobPool(pool)
	}

	accounts := account.New(account.Config{
		Interval:       cfg.RefreshInterval,
		BatchSize:      cfg.RefreshBatchSize,
		Jobs:           jobs,
		DirectFlushRPS: cfg.AccountFlushRPS,
	}, client, store, state, addresses, metrics.NewAccountRefresh(), jobMetrics, logger)

	indexerMetrics := metrics.NewBlockIndexer(cfg.Network)
	blockIndexer := indexer.New(store, client, registry, &processor.Env{
		Accounts:  accounts,
		Chain:     state,
		Addresses: addresses,
		Logger:    logger.Named("processor"),
	}, indexerMetrics, logger)

	hub := sigs.NewHub(metrics.NewSignal(), logger)

	heights := jobs
	heights.Workers = cfg.JobWorkers
	gw = gateway.New(gateway.Config{
		NewBlock:       jobs,
		MissingHeight:  heights,
		DeleteBlock:    jobs,
		NewRound:       jobs,
		StatusInterval: cfg.StatusInterval,
	}, blockIndexer, client, state, hub, metrics.NewGateway(), jobMetrics, logger)

	gaps := indexer.NewGapFiller(store, client, state, gw.HeightQueue(), blockIndexer, indexerMetrics, cfg.GapInterval, cfg.GapLimit, logger)
	tip := indexer.NewTipReconciler(store, client, gw.DeleteQueue(), blockIndexer, indexerMetrics, cfg.GapInterval, cfg.TipDepth, logger)

	var sink *clickhouse.Sink
	if cfg.ClickhouseDSN != "" {
		sink, err = clickhouse.NewSink(cfg.ClickhouseDSN, metrics.NewClickhouseSink(cfg.Network), logger)
		if err != nil {
			return fmt.Errorf("init clickhouse sink: %w", err)
		}
		defer func() {
			if closeErr := sink.Close(); closeErr != nil {
				err = multierror.Append(err, fmt.Errorf("close clickhouse sink: %w", closeErr))
			}
		}()
	}

	server := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(ctx)
	})
	g.Go(func() error {
		return gw.Run(ctx)
	})
	g.Go(func() error {
		return accounts.Run(ctx)
	})
	if cfg.GenesisAssets != "" {
		g.Go(func() error {
			return importGenesis(ctx, accounts, cfg.GenesisAssets)
		})
	}
	g.Go(func() error {
		return ignoreCanceled(gaps.Run(ctx))
	})
	g.Go(func() error {
		return ignoreCanceled(tip.Run(ctx))
	})
	if sink != nil {
		g.Go(func() error {
			return sink.Run(ctx, hub)
		})
	}
	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", cfg.MetricsAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	logger.Info("lisk indexer started",
		zap.String("network", cfg.Network),
		zap.String("node_url", cfg.NodeURL),
		zap.Bool("analytics_sink", sink != nil),
	)
	return g.Wait()
}

func importGenesis(ctx context.Context, accounts *account.Refresher, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open genesis assets: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if _, err := accounts.ImportGenesis(ctx, f); err != nil {
		return ignoreCanceled(fmt.Errorf("import genesis accounts: %w", err))
	}
	return nil
}

func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
