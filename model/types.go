package model

// DeliveryJob is one user request travelling from the Telegram intake to the
// delivery worker.
type DeliveryJob struct {
	RequestID string
	ChatID    int64
	Text      string
}
