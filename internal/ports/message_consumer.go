package ports

import "context"

// MessageConsumer — потребитель записей стрима. Run блокируется до отмены
// контекста; остановка корректна только между сообщениями (после ack).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
