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

	"github.com/caretrust/medledger-backend/internal/anchor"
	"github.com/caretrust/medledger-backend/internal/audit"
	"github.com/caretrust/medledger-backend/internal/chain"
	"github.com/caretrust/medledger-backend/internal/clock"
	"github.com/caretrust/medledger-backend/internal/metrics"
	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/caretrust/medledger-backend/internal/query"
	"github.com/caretrust/medledger-backend/internal/reconcile"
	"github.com/caretrust/medledger-backend/internal/registry"
	chrepo "github.com/caretrust/medledger-backend/internal/repository/clickhouse"
	"github.com/caretrust/medledger-backend/internal/repository/leveldb"
	"github.com/caretrust/medledger-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr               string        `long:"addr" env:"LEDGER_API_ADDR" description:"listen address" default:":8000"`
	BlocksPath         string        `long:"blocks-path" env:"LEDGER_API_BLOCKS_PATH" description:"leveldb path for chain blocks" default:"data/blocks"`
	DocumentsPath      string        `long:"documents-path" env:"LEDGER_API_DOCUMENTS_PATH" description:"leveldb path for documents" default:"data/documents"`
	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"LEDGER_API_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit trail"`
	BootstrapAdmins    []string      `long:"bootstrap-admin" env:"LEDGER_API_BOOTSTRAP_ADMINS" env-delim:"," description:"identities granted administrator at startup" required:"true"`
	AnchorWait         time.Duration `long:"anchor-wait" env:"LEDGER_API_ANCHOR_WAIT" description:"how long a write request waits for its anchor" default:"5s"`
	SweepInterval      time.Duration `long:"sweep-interval" env:"LEDGER_API_SWEEP_INTERVAL" description:"interval between unanchored document sweeps" default:"5m"`
	AuditFlushSize     int           `long:"audit-flush-size" env:"LEDGER_API_AUDIT_FLUSH_SIZE" description:"audit events per batch" default:"64"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"LEDGER_API_AUDIT_FLUSH_INTERVAL" description:"max delay before an audit batch flushes" default:"2s"`
	AuditFlushRPS      int           `long:"audit-flush-rps" env:"LEDGER_API_AUDIT_FLUSH_RPS" description:"max audit flushes per second" default:"4"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	auditRepo, err := chrepo.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init audit repository: %w", err)
	}

	auditSink, err := audit.NewSink(auditRepo, logger, cfg.AuditFlushSize, cfg.AuditFlushInterval, cfg.AuditFlushRPS)
	if err != nil {
		return fmt.Errorf("init audit sink: %w", err)
	}
	auditSink.Start(ctx)
	defer auditSink.Stop()

	blockStore, err := leveldb.NewBlockStore(cfg.BlocksPath, metrics.NewLevelDBRepository("blocks"))
	if err != nil {
		return fmt.Errorf("init block store: %w", err)
	}
	defer func() {
		if closeErr := blockStore.Close(); closeErr != nil {
			logger.Error("close block store", zap.Error(closeErr))
		}
	}()

	docStore, err := leveldb.NewDocumentStore(cfg.DocumentsPath, metrics.NewLevelDBRepository("documents"))
	if err != nil {
		return fmt.Errorf("init document store: %w", err)
	}
	defer func() {
		if closeErr := docStore.Close(); closeErr != nil {
			logger.Error("close document store", zap.Error(closeErr))
		}
	}()

	ledger, err := chain.New(ctx, blockStore, metrics.NewChain(), logger)
	if err != nil {
		return fmt.Errorf("init chain: %w", err)
	}

	index := anchor.NewIndex()

	admins := make([]model.Identity, 0, len(cfg.BootstrapAdmins))
	for _, admin := range cfg.BootstrapAdmins {
		admins = append(admins, model.Identity(admin))
	}
	accessRegistry, err := registry.New(index, auditSink, logger, admins...)
	if err != nil {
		return fmt.Errorf("init access registry: %w", err)
	}

	anchorService, err := anchor.NewService(accessRegistry, ledger, index, auditSink, metrics.NewAnchor(), logger)
	if err != nil {
		return fmt.Errorf("init anchor service: %w", err)
	}

	coordinator, err := reconcile.New(docStore, anchorService, index, metrics.NewReconciler(), logger)
	if err != nil {
		return fmt.Errorf("init reconciliation coordinator: %w", err)
	}
	coordinator.Start(ctx)
	defer coordinator.Stop()

	go sweepLoop(ctx, coordinator, cfg.SweepInterval, logger)

	queries, err := query.NewService(index, ledger, docStore, logger)
	if err != nil {
		return fmt.Errorf("init query service: %w", err)
	}

	handler, err := transport.NewHandler(accessRegistry, coordinator, queries, auditRepo, metrics.NewHTTP(), logger, cfg.AnchorWait)
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}

	router := handler.Router()
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sweepLoop periodically resubmits documents whose anchor never landed.
func sweepLoop(ctx context.Context, coordinator *reconcile.Coordinator, interval time.Duration, logger *zap.Logger) {
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return
		}
		resubmitted, err := coordinator.SweepUnanchored(ctx)
		if err != nil {
			logger.Error("unanchored sweep failed", zap.Error(err))
			continue
		}
		if resubmitted > 0 {
			logger.Info("unanchored sweep finished", zap.Int("resubmitted", resubmitted))
		}
	}
}
