package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"midday/internal/config"
	"midday/internal/handler"
	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"
	"midday/internal/repository/redis"
	"midday/internal/router"
	"midday/internal/service"
	"midday/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	pkg.SetJWTSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatalf("mysql init: %v", err)
	}
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.MemberProfile{},
		&model.MembershipOutbox{},
		&model.Contest{},
		&model.Achievement{},
		&model.ProudMention{},
		&model.GalleryItem{},
		&model.Notice{},
		&model.AboutEntry{},
		&model.Executive{},
		&model.SeniorExecutive{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatalf("redis init: %v", err)
	}
	defer redis.Close()

	// 媒体存储可选，没配就只允许纯文本内容
	var uploader service.Uploader
	if cfg.StorageCloudName != "" {
		uploader = storage.New(cfg.StorageCloudName, cfg.StorageAPIKey, cfg.StorageAPISecret, cfg.StorageFolder)
	} else {
		log.Println("storage not configured, media uploads disabled")
	}

	// kafka 可选，没配就把生命周期事件打到日志
	sender := service.Sender(service.LogSender)
	if cfg.KafkaBrokers != "" {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(cfg.KafkaBrokers, ","),
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatalf("kafka init: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	db := mysql.DB
	emailSvc := service.NewEmailService(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	})

	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(service.NewAuthService(db, emailSvc), emailSvc),
		Member: handler.NewMemberHandler(
			service.NewMemberService(db, uploader, cfg.MemberPageSize),
			service.NewLifecycleService(db),
		),
		Contest: handler.NewContestHandler(service.NewContestService(db)),
		Content: handler.NewContentHandler(
			service.NewAchievementService(db),
			service.NewProudMentionService(db, uploader),
			service.NewGalleryService(db, uploader),
			service.NewNoticeService(db),
			service.NewAboutService(db, uploader),
			service.NewExecutiveService(db, uploader),
		),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	relayer := service.NewOutboxRelayer(db, sender)
	go relayer.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router.New(handlers, cfg.RateLimitPerMin),
	}
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
