package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"user-service/internal/application/usecase"
)

type RabbitMQ interface {
	usecase.EventPublisher
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetConn() *amqp091.Connection
}
