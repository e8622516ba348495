package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/service"
	"github.com/obrasync/cashbox/internal/transport/api/tokens"
)

type CashboxHandler struct {
	svs CashboxServicer
}

func NewCashboxHandler(svs CashboxServicer) *CashboxHandler {
	return &CashboxHandler{
		svs: svs,
	}
}

type OpenParams struct {
	// UserID владелец кассы. По умолчанию текущий пользователь.
	UserID      int64           `json:"user_id"      binding:"omitempty,gt=0"`
	OpeningARS  decimal.Decimal `json:"opening_ars"  binding:"money"`
	OpeningUSD  decimal.Decimal `json:"opening_usd"  binding:"money"`
	OpeningDate *time.Time      `json:"opening_date"`
}

// Open POST RouteGroup + CashboxesRoute. Открыть кассу другого пользователя может только супервайзер.
func (h *CashboxHandler) Open(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params OpenParams
	if !bindJSON(c, &params) {
		return
	}
	if params.UserID == 0 {
		params.UserID = currentUserID
	}
	if params.UserID != currentUserID && getRoleFromContext(c) != tokens.RoleSupervisor {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.Open(reqCtx, service.OpenArgs{
		UserID:  params.UserID,
		ActorID: currentUserID,
		Opening: domain.Balances{ARS: params.OpeningARS, USD: params.OpeningUSD},
		Date:    dateOrNow(params.OpeningDate),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCashboxResponse(cb))
}

// Show GET RouteGroup + CashboxRoute.
func (h *CashboxHandler) Show(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.Get(reqCtx, cashboxID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCashboxResponse(cb))
}

// Current GET RouteGroup + CurrentCashboxRoute. Открытая касса текущего пользователя.
func (h *CashboxHandler) Current(c *gin.Context) {
	h.openForUser(c, getUserIDFromContext(c))
}

// ForUser GET RouteGroup + UserCashboxRoute. Открытая касса указанного пользователя.
func (h *CashboxHandler) ForUser(c *gin.Context) {
	userID, ok := paramID(c, "userID")
	if !ok {
		return
	}
	h.openForUser(c, userID)
}

func (h *CashboxHandler) openForUser(c *gin.Context, userID int64) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.GetOpenForUser(reqCtx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCashboxResponse(cb))
}

// Balance GET RouteGroup + BalanceRoute.
func (h *CashboxHandler) Balance(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, cashboxID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalanceResponse(balance))
}

type RefillParams struct {
	Amount        decimal.Decimal `json:"amount"         binding:"positive_money"`
	Currency      domain.Currency `json:"currency"       binding:"required,currency"`
	Description   string          `json:"description"    binding:"max=255"`
	EffectiveDate *time.Time      `json:"effective_date"`
}

// Refill POST RouteGroup + RefillsRoute.
func (h *CashboxHandler) Refill(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params RefillParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	args := service.RefillArgs{
		CashboxID:   cashboxID,
		ActorID:     getUserIDFromContext(c),
		Amount:      params.Amount,
		Currency:    params.Currency,
		Description: params.Description,
	}
	if params.EffectiveDate != nil {
		args.EffectiveDate = *params.EffectiveDate
	}
	m, err := h.svs.Refill(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMovementResponse(m))
}

type AdjustmentParams struct {
	// Amount со знаком: отрицательная сумма уменьшает остаток.
	Amount        decimal.Decimal `json:"amount"         binding:"nonzero_money"`
	Currency      domain.Currency `json:"currency"       binding:"required,currency"`
	Reason        string          `json:"reason"         binding:"max=255"`
	EffectiveDate *time.Time      `json:"effective_date"`
}

// Adjust POST RouteGroup + AdjustmentsRoute. Только для супервайзера.
func (h *CashboxHandler) Adjust(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params AdjustmentParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	args := service.ManualAdjustmentArgs{
		CashboxID: cashboxID,
		ActorID:   getUserIDFromContext(c),
		Amount:    params.Amount,
		Currency:  params.Currency,
		Reason:    params.Reason,
	}
	if params.EffectiveDate != nil {
		args.EffectiveDate = *params.EffectiveDate
	}
	m, err := h.svs.ManualAdjustment(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMovementResponse(m))
}

type CloseParams struct {
	DeclaredARS decimal.Decimal `json:"declared_ars" binding:"money"`
	DeclaredUSD decimal.Decimal `json:"declared_usd" binding:"money"`
	ClosingDate *time.Time      `json:"closing_date"`
}

// Close POST RouteGroup + CloseRoute.
func (h *CashboxHandler) Close(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params CloseParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.Close(reqCtx, service.CloseArgs{
		CashboxID: cashboxID,
		ActorID:   getUserIDFromContext(c),
		Declared:  domain.Balances{ARS: params.DeclaredARS, USD: params.DeclaredUSD},
		Date:      dateOrNow(params.ClosingDate),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCashboxResponse(cb))
}

type PostMovementParams struct {
	UserID        int64               `json:"user_id"        binding:"required,gt=0"`
	Kind          domain.MovementKind `json:"kind"           binding:"required,oneof=income expense"`
	Amount        decimal.Decimal     `json:"amount"         binding:"positive_money"`
	Currency      domain.Currency     `json:"currency"       binding:"required,currency"`
	EffectiveDate time.Time           `json:"effective_date" binding:"required"`
	Description   string              `json:"description"    binding:"max=255"`
	ExpenseID     *int64              `json:"expense_id"     binding:"omitempty,gt=0"`
	IncomeID      *int64              `json:"income_id"      binding:"omitempty,gt=0"`
}

// PostMovement POST RouteGroup + MovementsRoute. Подтвержденные расходы и доходы из внешних систем.
func (h *CashboxHandler) PostMovement(c *gin.Context) {
	var params PostMovementParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	m, err := h.svs.PostMovement(reqCtx, service.PostMovementArgs{
		UserID:        params.UserID,
		ActorID:       getUserIDFromContext(c),
		Kind:          params.Kind,
		Amount:        params.Amount,
		Currency:      params.Currency,
		EffectiveDate: params.EffectiveDate,
		Description:   params.Description,
		ExpenseID:     params.ExpenseID,
		IncomeID:      params.IncomeID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMovementResponse(m))
}

type CorrectionParams struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// Correct POST RouteGroup + CorrectionRoute.
func (h *CashboxHandler) Correct(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	movementID, ok := paramID(c, "movementID")
	if !ok {
		return
	}
	var params CorrectionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	m, err := h.svs.CorrectMovement(reqCtx, service.CorrectMovementArgs{
		CashboxID:  cashboxID,
		MovementID: movementID,
		ActorID:    getUserIDFromContext(c),
		Reason:     params.Reason,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMovementResponse(m))
}
