package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"avaliadores_api/internal/adapter/persistence/repository"
	"avaliadores_api/internal/infrastructure/analysis"
	"avaliadores_api/internal/infrastructure/database"
	"avaliadores_api/internal/infrastructure/queue"
	"avaliadores_api/internal/infrastructure/storage"
	"avaliadores_api/internal/usecase"
	"avaliadores_api/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// The worker binary consumes the SQS task queue and drives solicitações
// through the analysis state machine. It is only needed when the API runs
// with TASK_DISPATCHER=sqs; the default deployment processes tasks in-process.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queueURL := os.Getenv("TASKS_QUEUE_URL")
	if queueURL == "" {
		log.Fatalf("TASKS_QUEUE_URL is required")
	}

	ddb := database.ConnectDynamoDB()
	solicitacaoRepo := repository.NewSolicitacaoDynamoRepository(ddb)
	resultadoRepo := repository.NewResultadoDynamoRepository(ddb)

	coordinator := usecase.NewAnalysisCoordinator(solicitacaoRepo, resultadoRepo, buildResultStore(), buildAnalysisExecutor())

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create sqs config: %v", err)
	}

	concurrency, _ := strconv.Atoi(getenvDefault("WORKER_CONCURRENCY", "4"))
	consumer := queue.NewSQSConsumer(queue.ConnectSQS(cfg), queueURL, coordinator, concurrency)

	if err := consumer.Run(ctx); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
	log.Printf("[worker] shutdown complete")
}

func buildResultStore() interfaces.IResultStore {
	switch getenvDefault("RESULT_STORE", "file") {
	case "s3":
		cfg, err := database.NewAWSConfigFromEnv(context.Background())
		if err != nil {
			log.Fatalf("failed to create s3 config: %v", err)
		}
		bucket := os.Getenv("RESULTS_BUCKET")
		if bucket == "" {
			log.Fatalf("RESULT_STORE=s3 requires RESULTS_BUCKET")
		}
		return storage.NewS3ResultStore(storage.ConnectS3(cfg), bucket)
	default:
		return storage.NewFileResultStore(getenvDefault("RESULTS_FOLDER", "documentos/resultados"))
	}
}

func buildAnalysisExecutor() interfaces.IAnalysisExecutor {
	switch getenvDefault("ANALYSIS_ENGINE", "mock") {
	case "http":
		url := os.Getenv("ANALYSIS_ENGINE_URL")
		if url == "" {
			log.Fatalf("ANALYSIS_ENGINE=http requires ANALYSIS_ENGINE_URL")
		}
		return analysis.NewHTTPAnalyzer(url)
	default:
		log.Printf("[worker] using mock analysis engine")
		return analysis.NewMockAnalyzer()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
