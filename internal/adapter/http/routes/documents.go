package routes

import (
	"avaliadores_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentoHandler *handlers.DocumentoHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("/upload", documentoHandler.UploadDocumento)
		documents.GET("/solicitacoes", documentoHandler.ListSolicitacoes)
		documents.GET("/solicitacoes/:uuid", documentoHandler.GetSolicitacao)
		documents.GET("/resultados/:uuid", documentoHandler.GetResultado)
	}
}
