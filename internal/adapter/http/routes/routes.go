package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "avaliadores_api/docs" // This will be auto-generated
	"avaliadores_api/internal/adapter/http/handlers"
	"avaliadores_api/internal/adapter/persistence/repository"
	"avaliadores_api/internal/infrastructure/analysis"
	"avaliadores_api/internal/infrastructure/database"
	"avaliadores_api/internal/infrastructure/documents"
	"avaliadores_api/internal/infrastructure/queue"
	"avaliadores_api/internal/infrastructure/storage"
	"avaliadores_api/internal/usecase"
	"avaliadores_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	solicitacaoRepo := repository.NewSolicitacaoDynamoRepository(ddb)
	resultadoRepo := repository.NewResultadoDynamoRepository(ddb)

	store := buildResultStore()
	executor := buildAnalysisExecutor()

	coordinator := usecase.NewAnalysisCoordinator(solicitacaoRepo, resultadoRepo, store, executor)
	dispatcher := buildDispatcher(coordinator)

	solicitacaoUseCase := usecase.NewSolicitacaoUseCase(solicitacaoRepo, resultadoRepo, store, dispatcher)
	saver := documents.NewLocalSaver(getenvDefault("DOCUMENTS_FOLDER", "documentos"))

	documentoHandler := handlers.NewDocumentoHandler(solicitacaoUseCase, saver)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentRoutes(v1, documentoHandler)
}

// buildResultStore selects where analysis artifacts live.
// RESULT_STORE=s3 requires RESULTS_BUCKET; the default keeps artifacts on the
// local filesystem, like the documents folder.
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

// buildAnalysisExecutor selects the analysis engine at startup; the
// coordinator never branches on this.
func buildAnalysisExecutor() interfaces.IAnalysisExecutor {
	switch getenvDefault("ANALYSIS_ENGINE", "mock") {
	case "http":
		url := os.Getenv("ANALYSIS_ENGINE_URL")
		if url == "" {
			log.Fatalf("ANALYSIS_ENGINE=http requires ANALYSIS_ENGINE_URL")
		}
		return analysis.NewHTTPAnalyzer(url)
	default:
		log.Printf("[routes] using mock analysis engine")
		return analysis.NewMockAnalyzer()
	}
}

// buildDispatcher selects the execution facility. The default runs an
// in-process worker pool; TASK_DISPATCHER=sqs hands tasks to the queue
// consumed by cmd/worker instead.
func buildDispatcher(coordinator *usecase.AnalysisCoordinator) interfaces.ITaskDispatcher {
	switch getenvDefault("TASK_DISPATCHER", "local") {
	case "sqs":
		cfg, err := database.NewAWSConfigFromEnv(context.Background())
		if err != nil {
			log.Fatalf("failed to create sqs config: %v", err)
		}
		queueURL := os.Getenv("TASKS_QUEUE_URL")
		if queueURL == "" {
			log.Fatalf("TASK_DISPATCHER=sqs requires TASKS_QUEUE_URL")
		}
		return queue.NewSQSDispatcher(queue.ConnectSQS(cfg), queueURL)
	default:
		workers, _ := strconv.Atoi(getenvDefault("WORKER_CONCURRENCY", "4"))
		dispatcher := queue.NewLocalDispatcher(coordinator, workers, 256)
		go func() {
			if err := dispatcher.Start(context.Background()); err != nil {
				log.Printf("[routes] local worker pool stopped: %v", err)
			}
		}()
		return dispatcher
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
