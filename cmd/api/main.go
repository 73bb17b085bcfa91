package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bryanwahyu/applicant-intake/internal/application"
	appanalysis "github.com/bryanwahyu/applicant-intake/internal/application/analysis"
	appapps "github.com/bryanwahyu/applicant-intake/internal/application/applications"
	appqr "github.com/bryanwahyu/applicant-intake/internal/application/qrcodes"
	"github.com/bryanwahyu/applicant-intake/internal/config"
	"github.com/bryanwahyu/applicant-intake/internal/domain/analyses"
	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
	"github.com/bryanwahyu/applicant-intake/internal/domain/qrcodes"
	openaiClient "github.com/bryanwahyu/applicant-intake/internal/infra/ai/openai"
	mysqlp "github.com/bryanwahyu/applicant-intake/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/applicant-intake/internal/infra/db/postgres"
	"github.com/bryanwahyu/applicant-intake/internal/infra/httpserver"
	"github.com/bryanwahyu/applicant-intake/internal/infra/qr"
	minioStore "github.com/bryanwahyu/applicant-intake/internal/infra/storage"
)

func main() {
	// .env dulu, kalau ada
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (driver dipilih lewat config)
	var (
		db           *sql.DB
		appRepo      applications.Repository
		analysisRepo analyses.Repository
		qrRepo       qrcodes.Repository
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		appRepo = postgresp.NewApplicationRepository(db)
		analysisRepo = postgresp.NewAnalysisRepository(db)
		qrRepo = postgresp.NewQRCodeRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		appRepo = mysqlp.NewApplicationRepository(db)
		analysisRepo = mysqlp.NewAnalysisRepository(db)
		qrRepo = mysqlp.NewQRCodeRepository(db)
	}
	defer db.Close()

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init AI client
	client := openaiClient.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
	)

	clock := application.SystemClock{}

	// init services
	appsSvc := appapps.NewService(appRepo, analysisRepo, clock)
	analysisSvc := appanalysis.NewService(appRepo, analysisRepo, client, clock)
	qrSvc := appqr.NewService(qrRepo, store, qr.NewGenerator(), clock)

	// init router
	handler := httpserver.NewRouter(appsSvc, analysisSvc, qrSvc, cfg.Admin.Password)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
