package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/dto"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/GlebRadaev/translator/pkg/utils"
	"github.com/GlebRadaev/translator/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	Process(ctx context.Context, userID int, req domain.TranslationRequest) (*domain.TranslationRecord, error)
}

type TaskService interface {
	Enqueue(ctx context.Context, userID int, req domain.TranslationRequest) (string, error)
	GetStatus(ctx context.Context, taskID string) (*domain.TaskStatus, error)
}

type TranslateHandler struct {
	translationService Service
	taskService        TaskService
}

func New(translationService Service, taskService TaskService) *TranslateHandler {
	return &TranslateHandler{
		translationService: translationService,
		taskService:        taskService,
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (domain.TranslationRequest, bool) {
	var req dto.TranslateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return domain.TranslationRequest{}, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return domain.TranslationRequest{}, false
	}
	return req.ToDomain(), true
}

// Translate godoc
//
//	@Summary		Translate text
//	@Description	Charge the translation fee, translate the text and store the result.
//	@Description	If the engine fails after charging, the stored record is returned with status 502.
//	@Tags			Translate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TranslateRequestDTO	true	"Translation request"
//	@Success		200		{object}	dto.TranslationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		422		{object}	utils.Response	"Invalid translation input"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Failure		502		{object}	dto.TranslationErrorResponseDTO
//	@Router			/api/translate [post]
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	record, err := h.translationService.Process(r.Context(), userID, req)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dto.NewTranslationResponse(record))
	case errors.Is(err, domain.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrTranslationEngine) && record != nil:
		utils.RespondWithJSON(w, http.StatusBadGateway, dto.TranslationErrorResponseDTO{
			Error:  domain.ErrTranslationEngine.Error(),
			Record: dto.NewTranslationResponse(record),
		})
	default:
		zap.L().Error("translation failed", zap.Int("userID", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Enqueue godoc
//
//	@Summary		Queue a translation
//	@Description	Publish the request for background processing. The fee is charged when the task runs.
//	@Tags			Translate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TranslateRequestDTO	true	"Translation request"
//	@Success		202		{object}	dto.TaskQueuedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid translation input"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/translate/queue [post]
func (h *TranslateHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	taskID, err := h.taskService.Enqueue(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.TaskQueuedResponseDTO{
		TaskID: taskID,
		Status: domain.TaskStatusQueued,
	})
}

// GetTask godoc
//
//	@Summary		Task status
//	@Description	Pending until the worker stored a record for the task, then done with the output and cost.
//	@Tags			Translate
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		string	true	"Task id"
//	@Success		200		{object}	dto.TaskStatusResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/translate/task/{taskID} [get]
func (h *TranslateHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "task id is required")
		return
	}

	status, err := h.taskService.GetStatus(r.Context(), taskID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TaskStatusResponseDTO{
		TaskID:     status.TaskID,
		Status:     status.Status,
		OutputText: status.OutputText,
		Cost:       status.Cost,
	})
}
