package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"avaliadores_api/internal/adapter/http/dto/request"
	"avaliadores_api/internal/adapter/http/dto/response"
	"avaliadores_api/internal/usecase"
	"avaliadores_api/internal/usecase/interfaces"
	"avaliadores_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUploadPayload = pkg.NewDomainErrorSimple("INVALID_UPLOAD_INPUT", "Invalid upload payload", http.StatusBadRequest)
)

// DocumentoHandler handles document uploads and solicitação queries.
//
// The upload path is synchronous only up to dispatch: the analysis itself
// runs on the background facility and results are fetched through the
// resultado endpoint once the solicitação reaches concluido.

type DocumentoHandler struct {
	usecase usecase.ISolicitacaoUseCase
	saver   interfaces.IUploadSaver
}

func NewDocumentoHandler(uc usecase.ISolicitacaoUseCase, saver interfaces.IUploadSaver) *DocumentoHandler {
	return &DocumentoHandler{usecase: uc, saver: saver}
}

// UploadDocumento accepts a multipart form with the document file and its
// tipo_documento, stores the file, creates the solicitação and dispatches it.
func (h *DocumentoHandler) UploadDocumento(c *gin.Context) {
	var payload request.UploadDocumentoRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	if !request.IsSupportedExtension(fileHeader.Filename) {
		appErr := pkg.NewDomainErrorSimple(
			"UNSUPPORTED_FILE_EXTENSION",
			"Unsupported file format. Use one of: "+request.SupportedExtensions(),
			http.StatusBadRequest,
		)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed reading upload", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	caminhoArquivo, err := h.saver.SaveUpload(fileHeader.Filename, f)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed storing upload", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	solicitacao, err := h.usecase.CreateAndDispatch(c.Request.Context(), payload.ResolveTipoDocumento(), fileHeader.Filename, caminhoArquivo)
	if err != nil {
		appErr := mapSolicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SolicitacaoDetailResponse{
		Success: true,
		Message: "Documento enviado com sucesso. A análise foi iniciada.",
		Data:    response.FromSolicitacao(solicitacao),
	})
}

func (h *DocumentoHandler) ListSolicitacoes(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.usecase.List(c.Request.Context(), skip, limit)
	if err != nil {
		appErr := mapSolicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SolicitacaoListResponse{
		Success: true,
		Message: "Foram encontradas " + strconv.Itoa(len(items)) + " solicitações",
		Data:    response.FromSolicitacoes(items),
	})
}

func (h *DocumentoHandler) GetSolicitacao(c *gin.Context) {
	solicitacao, err := h.usecase.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		appErr := mapSolicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SolicitacaoDetailResponse{
		Success: true,
		Message: "Solicitação encontrada",
		Data:    response.FromSolicitacao(solicitacao),
	})
}

func (h *DocumentoHandler) GetResultado(c *gin.Context) {
	uuid := c.Param("uuid")
	payload, err := h.usecase.GetResultado(c.Request.Context(), uuid)
	if err != nil {
		appErr := mapSolicitacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ResultadoDetailResponse{
		Success:   true,
		Message:   "Resultado encontrado",
		UUID:      uuid,
		Resultado: payload,
	})
}

func mapSolicitacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTipoDocumento):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_TYPE", "Invalid tipo_documento", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNomeArquivo), errors.Is(err, usecase.ErrInvalidUUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSolicitacaoNotFound):
		return pkg.NewDomainErrorSimple("SOLICITACAO_NOT_FOUND", "Solicitação not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResultadoNotFound):
		return pkg.NewDomainErrorSimple("RESULTADO_NOT_FOUND", "Resultado not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDispatchFailed):
		return pkg.NewDomainError("DISPATCH_FAILED", "Failed to start analysis; try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
