package repoargs

type ExplanationCreate struct {
	CashboxID int64
	UserID    int64
	Message   string
}

type DeliveryResult struct {
	ID        int64
	Delivered bool
}

type ExplanationBatchExec func(i int, err error)
