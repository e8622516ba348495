package api

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obrasync/cashbox/internal/domain"
)

type HistoryHandler struct {
	svs HistoryServicer
}

func NewHistoryHandler(svs HistoryServicer) *HistoryHandler {
	return &HistoryHandler{
		svs: svs,
	}
}

// HistoryQuery параметры фильтра истории. Даты принимаются в виде 2006-01-02 или RFC3339.
// Page и Limit вне допустимых границ приводятся к ним в domain.HistoryFilter.Normalize.
type HistoryQuery struct {
	Page      int                 `form:"page"`
	Limit     int                 `form:"limit"`
	Kind      domain.MovementKind `form:"kind"       binding:"omitempty,movement_kind"`
	Currency  domain.Currency     `form:"currency"   binding:"omitempty,currency"`
	StartDate string              `form:"start_date"`
	EndDate   string              `form:"end_date"`
}

// filter собирает domain.HistoryFilter. Пустые параметры не ограничивают выборку.
func (q HistoryQuery) filter() (domain.HistoryFilter, error) {
	f := domain.HistoryFilter{Page: q.Page, Limit: q.Limit}
	if q.Kind != "" {
		f.Kind = &q.Kind
	}
	if q.Currency != "" {
		f.Currency = &q.Currency
	}
	var err error
	if f.StartDate, err = parseDate(q.StartDate, false); err != nil {
		return f, &domain.ValidationError{Field: "start_date", Reason: "invalid date"}
	}
	if f.EndDate, err = parseDate(q.EndDate, true); err != nil {
		return f, &domain.ValidationError{Field: "end_date", Reason: "invalid date"}
	}
	return f, nil
}

func (h *HistoryHandler) bindFilter(c *gin.Context) (domain.HistoryFilter, bool) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return domain.HistoryFilter{}, false
	}
	f, err := q.filter()
	if err != nil {
		abortWithServiceError(c, err)
		return f, false
	}
	return f, true
}

// Index GET RouteGroup + HistoryRoute. Страница движений кассы, новые первыми.
func (h *HistoryHandler) Index(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.svs.GetHistory(reqCtx, cashboxID, filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	items := make([]*MovementResponse, len(page.Items))
	for i := range page.Items {
		items[i] = newMovementResponse(&page.Items[i])
	}
	c.JSON(http.StatusOK, HistoryResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

var exportHeader = []string{
	"id", "effective_date", "kind", "direction", "currency", "amount", "description", "corrects_id", "voided_at",
}

// Export GET RouteGroup + ExportRoute. Выгружает все движения кассы по фильтру в CSV без пагинации.
func (h *HistoryHandler) Export(c *gin.Context) {
	cashboxID, ok := paramID(c, "id")
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	movements, err := h.svs.Movements(reqCtx, cashboxID, filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cashbox-%d.csv"`, cashboxID))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for m := range movements {
		_ = w.Write(exportRow(m))
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}
}

func exportRow(m domain.CashMovement) []string {
	var correctsID, voidedAt string
	if m.CorrectsID != nil {
		correctsID = strconv.FormatInt(*m.CorrectsID, 10)
	}
	if m.VoidedAt != nil {
		voidedAt = m.VoidedAt.Format(time.RFC3339)
	}
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.EffectiveDate.Format(dateLayout),
		string(m.Kind),
		string(m.Direction),
		string(m.Currency),
		m.Amount.StringFixed(domain.AmountScale),
		m.Description,
		correctsID,
		voidedAt,
	}
}
