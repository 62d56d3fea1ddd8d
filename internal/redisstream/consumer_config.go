package redisstream

import (
	"time"
)

// Политики подтверждения записей.
const (
	// AckAlways — подтверждать запись независимо от исхода обработки
	// (временные ошибки не блокируют продвижение по стриму).
	AckAlways = "always"
	// AckOnSuccess — подтверждать только успех и окончательный брак;
	// временные ошибки оставляют запись в pending для повторной доставки.
	AckOnSuccess = "on-success"
)

type ConsumerConfig struct {
	URL      string
	Stream   string
	Group    string
	Consumer string

	Block          time.Duration // блокировка XREADGROUP в ожидании записей
	ConnectBackoff time.Duration // пауза после ошибок соединения
	TimeoutBackoff time.Duration // пауза после таймаутов команд
	ProcessTimeout time.Duration // таймаут обработки одной записи
	AckPolicy      string
}

// applyDefaults — параметры по умолчанию (если не заданы в конфиге).
func (c *ConsumerConfig) applyDefaults() {
	if c.Block <= 0 {
		c.Block = 10 * time.Second
	}
	if c.ConnectBackoff <= 0 {
		c.ConnectBackoff = 5 * time.Second
	}
	if c.TimeoutBackoff <= 0 {
		c.TimeoutBackoff = 1 * time.Second
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = 30 * time.Second
	}
	if c.AckPolicy == "" {
		c.AckPolicy = AckAlways
	}
}

// ackAlways — true, если политика велит подтверждать запись при любом исходе.
func (c *ConsumerConfig) ackAlways() bool {
	return c.AckPolicy != AckOnSuccess
}
