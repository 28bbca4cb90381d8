package history

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/dto"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/GlebRadaev/translator/pkg/utils"
)

const defaultLimit = domain.MaxPageLimit

type Service interface {
	GetHistory(ctx context.Context, userID, limit int) ([]domain.HistoryItem, error)
}

type TranslationService interface {
	GetTranslations(ctx context.Context, userID, offset, limit int) ([]domain.TranslationRecord, error)
}

type WalletService interface {
	GetTransactions(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error)
}

type HistoryHandler struct {
	historyService     Service
	translationService TranslationService
	walletService      WalletService
}

func New(historyService Service, translationService TranslationService, walletService WalletService) *HistoryHandler {
	return &HistoryHandler{
		historyService:     historyService,
		translationService: translationService,
		walletService:      walletService,
	}
}

func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func pageParams(w http.ResponseWriter, r *http.Request) (skip, limit int, ok bool) {
	if skip, ok = queryInt(r, "skip", 0); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return 0, 0, false
	}
	if limit, ok = queryInt(r, "limit", defaultLimit); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return 0, 0, false
	}
	skip, limit = domain.ClampPage(skip, limit)
	return skip, limit, true
}

// GetHistory godoc
//
//	@Summary		Combined history
//	@Description	Translations and wallet transactions of the authenticated user, newest first.
//	@Tags			History
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of items"	default(100)
//	@Success		200		{array}		dto.HistoryItemDTO
//	@Failure		400		{object}	utils.Response	"Invalid query parameter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/history [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit, ok := queryInt(r, "limit", defaultLimit)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	items, err := h.historyService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.HistoryItemDTO, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.NewHistoryItem(item))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetTranslations godoc
//
//	@Summary		Translation history
//	@Description	Stored translations of the authenticated user, newest first.
//	@Tags			History
//	@Security		BearerAuth
//	@Produce		json
//	@Param			skip	query		int	false	"Number of items to skip"	default(0)
//	@Param			limit	query		int	false	"Maximum number of items"	default(100)
//	@Success		200		{array}		dto.TranslationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query parameter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/history/translations [get]
func (h *HistoryHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	skip, limit, ok := pageParams(w, r)
	if !ok {
		return
	}

	records, err := h.translationService.GetTranslations(r.Context(), userID, skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TranslationResponseDTO, 0, len(records))
	for i := range records {
		resp = append(resp, dto.NewTranslationResponse(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetTransactions godoc
//
//	@Summary		Wallet transactions
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			History
//	@Security		BearerAuth
//	@Produce		json
//	@Param			skip	query		int	false	"Number of items to skip"	default(0)
//	@Param			limit	query		int	false	"Maximum number of items"	default(100)
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query parameter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/history/transactions [get]
func (h *HistoryHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	skip, limit, ok := pageParams(w, r)
	if !ok {
		return
	}

	transactions, err := h.walletService.GetTransactions(r.Context(), userID, skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, dto.NewTransactionResponse(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
