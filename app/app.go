package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campushub/circulation-service/config"
	"github.com/campushub/circulation-service/internal/handler"
	"github.com/campushub/circulation-service/internal/identity"
	"github.com/campushub/circulation-service/internal/repository"
	"github.com/campushub/circulation-service/internal/server"
	"github.com/campushub/circulation-service/internal/service"
	"github.com/campushub/circulation-service/migrations"
	"github.com/campushub/circulation-service/pkg/kafka"
	"github.com/campushub/circulation-service/pkg/logger"
	"github.com/campushub/circulation-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	// circulation still works without the broker; events are best-effort
	var publisher kafka.Publisher
	if producer, err := kafka.NewProducer(cfg.Kafka); err != nil {
		log.Warn("kafka.NewProducer", zap.Error(err))
	} else {
		publisher = kafka.NewPublisher(producer)
	}

	identityClient := identity.NewClient(log, *cfg)
	svc := service.NewService(repo, identityClient, publisher, cfg.Circulation.FinePerDay, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return srv.Run()
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = g.Wait(); err != nil {
		log.Error("server run", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
