package service

import (
	"fmt"

	"github.com/obrasync/cashbox/pkg/uow"
)

type AppServices struct {
	CashboxService  *CashboxService
	ApprovalService *ApprovalService
	HistoryService  *HistoryService
}

func Factory(unitOfWork uow.UOW, audit AuditLogger) (*AppServices, error) {
	cashboxService, cashboxServiceErr := NewCashboxService(unitOfWork, audit)
	if cashboxServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", cashboxServiceErr)
	}

	approvalService, approvalServiceErr := NewApprovalService(unitOfWork, audit)
	if approvalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", approvalServiceErr)
	}

	historyService, historyServiceErr := NewHistoryService(unitOfWork)
	if historyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", historyServiceErr)
	}

	return &AppServices{
		CashboxService:  cashboxService,
		ApprovalService: approvalService,
		HistoryService:  historyService,
	}, nil
}
