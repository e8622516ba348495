package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obrasync/cashbox/internal/service"
)

// ApprovalHandler ручки согласования расхождений. Доступны только супервайзеру.
type ApprovalHandler struct {
	svs ApprovalServicer
}

func NewApprovalHandler(svs ApprovalServicer) *ApprovalHandler {
	return &ApprovalHandler{
		svs: svs,
	}
}

type ExplanationParams struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// RequestExplanation POST RouteGroup + ExplanationsRoute. Уведомление доставляется асинхронно.
func (h *ApprovalHandler) RequestExplanation(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ExplanationParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.RequestExplanation(reqCtx, service.RequestExplanationArgs{
		CashboxID: cashboxID,
		ActorID:   getUserIDFromContext(c),
		Message:   params.Message,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newExplanationResponse(req))
}

type RejectionParams struct {
	Reason string `json:"reason" binding:"max=255"`
}

// Reject POST RouteGroup + RejectionRoute.
func (h *ApprovalHandler) Reject(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params RejectionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.RejectDifference(reqCtx, service.RejectDifferenceArgs{
		CashboxID: cashboxID,
		ActorID:   getUserIDFromContext(c),
		Reason:    params.Reason,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCashboxResponse(cb))
}

// Approve POST RouteGroup + ApprovalRoute. Согласующим становится текущий пользователь.
func (h *ApprovalHandler) Approve(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cb, err := h.svs.Approve(reqCtx, service.ApproveArgs{
		CashboxID:  cashboxID,
		ApproverID: getUserIDFromContext(c),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCashboxResponse(cb))
}
