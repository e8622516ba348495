package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/obrasync/cashbox/internal/transport/api/middlewares"
	"github.com/obrasync/cashbox/internal/transport/api/tokens"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
)

const (
	RouteGroup          = "/api"
	CurrentCashboxRoute = "/user/cashbox"
	UserCashboxRoute    = "/users/:userID/cashbox"
	MovementsRoute      = "/movements"
	CashboxesRoute      = "/cashboxes"
	CashboxRoute        = "/cashboxes/:id"
	BalanceRoute        = "/cashboxes/:id/balance"
	RefillsRoute        = "/cashboxes/:id/refills"
	AdjustmentsRoute    = "/cashboxes/:id/adjustments"
	CloseRoute          = "/cashboxes/:id/close"
	HistoryRoute        = "/cashboxes/:id/movements"
	ExportRoute         = "/cashboxes/:id/export"
	CorrectionRoute     = "/cashboxes/:id/movements/:movementID/correction"
	ExplanationsRoute   = "/cashboxes/:id/explanation-requests"
	RejectionRoute      = "/cashboxes/:id/rejection"
	ApprovalRoute       = "/cashboxes/:id/approval"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	CashboxService  CashboxServicer
	ApprovalService ApprovalServicer
	HistoryService  HistoryServicer
	JWTSecretKey    []byte
	// Redis хранилище ключей идемпотентности. Если nil, заголовок Idempotency-Key игнорируется.
	Redis          redis.Cmdable
	IdempotencyTTL time.Duration
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	l := args.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	cashboxHandler := NewCashboxHandler(args.CashboxService)
	approvalHandler := NewApprovalHandler(args.ApprovalService)
	historyHandler := NewHistoryHandler(args.HistoryService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.

	api.GET(CurrentCashboxRoute, cashboxHandler.Current)
	api.GET(CashboxRoute, cashboxHandler.Show)
	api.GET(BalanceRoute, cashboxHandler.Balance)
	api.GET(HistoryRoute, historyHandler.Index)
	api.GET(ExportRoute, historyHandler.Export)
	api.GET(UserCashboxRoute,
		middlewares.RequireRole(tokens.RoleSupervisor, tokens.RoleIntegration), cashboxHandler.ForUser)

	// изменяющие роуты принимают Idempotency-Key.
	mutating := api.Group("")
	if args.Redis != nil {
		ttl := args.IdempotencyTTL
		if ttl <= 0 {
			ttl = DefaultIdempotencyTTL
		}
		mutating.Use(middlewares.Idempotency(args.Redis, ttl, l))
	}

	mutating.POST(CashboxesRoute, cashboxHandler.Open)
	mutating.POST(RefillsRoute, cashboxHandler.Refill)
	mutating.POST(CloseRoute, cashboxHandler.Close)
	mutating.POST(CorrectionRoute, cashboxHandler.Correct)
	mutating.POST(MovementsRoute,
		middlewares.RequireRole(tokens.RoleIntegration, tokens.RoleSupervisor), cashboxHandler.PostMovement)

	supervisor := mutating.Group("", middlewares.RequireRole(tokens.RoleSupervisor))
	supervisor.POST(AdjustmentsRoute, cashboxHandler.Adjust)
	supervisor.POST(ExplanationsRoute, approvalHandler.RequestExplanation)
	supervisor.POST(RejectionRoute, approvalHandler.Reject)
	supervisor.POST(ApprovalRoute, approvalHandler.Approve)
	return r
}
