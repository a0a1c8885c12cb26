package mq

import (
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	conn *amqp.Connection
	once sync.Once
)

// Init はRabbitMQ接続を初期化する
func Init(url string) *amqp.Connection {
	once.Do(func() {
		c, err := amqp.Dial(url)
		if err != nil {
			log.Fatalf("failed to connect rabbitmq: %v", err)
		}
		conn = c
	})
	return conn
}

// Conn はMQ接続を返す
func Conn() *amqp.Connection {
	return conn
}
