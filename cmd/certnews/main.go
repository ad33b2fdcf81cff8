package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	certnewsapp "github.com/wyfcoding/certnews/internal/certnews/application"
	certnewsdomain "github.com/wyfcoding/certnews/internal/certnews/domain"
	"github.com/wyfcoding/certnews/internal/certnews/infrastructure/keywordfile"
	certnewsmysql "github.com/wyfcoding/certnews/internal/certnews/infrastructure/persistence/mysql"
	certnewshttp "github.com/wyfcoding/certnews/internal/certnews/interfaces/http"
	keywordapp "github.com/wyfcoding/certnews/internal/keyword/application"
	keyworddomain "github.com/wyfcoding/certnews/internal/keyword/domain"
	keywordinfra "github.com/wyfcoding/certnews/internal/keyword/infrastructure"
	keywordhttp "github.com/wyfcoding/certnews/internal/keyword/interfaces/http"
	statsapp "github.com/wyfcoding/certnews/internal/statistics/application"
	statsclient "github.com/wyfcoding/certnews/internal/statistics/infrastructure/client"
	statsmysql "github.com/wyfcoding/certnews/internal/statistics/infrastructure/persistence/mysql"
	statsconsumer "github.com/wyfcoding/certnews/internal/statistics/interfaces/consumer"
	statshttp "github.com/wyfcoding/certnews/internal/statistics/interfaces/http"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var (
	configPath      = flag.String("config", "configs/certnews/config.toml", "config file path")
	keywordFilePath = flag.String("keywords", "configs/certnews/keywords.txt", "keyword file path")
)

func main() {
	flag.Parse()

	// 1. 配置
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	// 4. 数据库
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(
			&certnewsmysql.RecordModel{},
			&keyworddomain.Keyword{},
			&statsmysql.DailyCountryRiskStatModel{},
			&outbox.Message{},
		); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka & Outbox
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)
	outboxMgr := outbox.NewManager(db.RawDB(), logger.Logger)
	pusher := func(ctx context.Context, topic, key string, payload []byte) error {
		return kafkaProducer.PublishToTopic(ctx, topic, []byte(key), payload)
	}
	outboxProcessor := outbox.NewProcessor(outboxMgr, pusher, 100, 2*time.Second)

	// 6. 仓储
	recordRepo := certnewsmysql.NewRecordRepository(db.RawDB())
	keywordRepo := keywordinfra.NewGormKeywordRepository(db.RawDB())
	statRepo := statsmysql.NewStatRepository(db.RawDB())
	publisher := outbox.NewPublisher(outboxMgr)

	// 7. 应用服务
	keywordSvc := keywordapp.NewKeywordService(keywordRepo)
	statsSvc := statsapp.NewStatsService(statsclient.NewRecordSource(recordRepo), statRepo)
	keywordStore := keywordfile.NewStore(*keywordFilePath)
	analysisSvc := certnewsapp.NewAnalysisService(recordRepo, keywordStore, keywordSvc, statsSvc, publisher)

	// 8. 事件消费：领域事件驱动统计投影刷新
	projectionHandler := statsconsumer.NewProjectionHandler(statsSvc, logger.Logger)
	projectionTopics := []string{
		certnewsdomain.RecordEscalatedEventType,
		certnewsdomain.RecordRelationChangedEventType,
	}
	for _, topic := range projectionTopics {
		consumerCfg := cfg.MessageQueue.Kafka
		consumerCfg.Topic = topic
		if consumerCfg.GroupID == "" {
			consumerCfg.GroupID = "certnews-stats-projection-group"
		}
		consumer := kafka.NewConsumer(&consumerCfg, logger, metricsImpl)
		consumer.Start(context.Background(), 3, projectionHandler.Handle)
	}

	// 9. 接口层
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	certnewshttp.NewAnalysisHandler(analysisSvc).RegisterRoutes(r.Group(""))
	keywordhttp.NewKeywordHandler(keywordSvc).RegisterRoutes(r.Group(""))
	statshttp.NewStatsHandler(statsSvc).RegisterRoutes(r.Group(""))

	// 10. 启动
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		outboxProcessor.Start()
		<-ctx.Done()
		outboxProcessor.Stop()
		return nil
	})

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
		server := &http.Server{Addr: addr, Handler: r}
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
