package redis

import (
	"log"
	"sync"

	radix "github.com/mediocregopher/radix/v3"
)

var (
	client radix.Client
	once   sync.Once
)

// Init はRedis接続プールを初期化する
func Init(addr string) radix.Client {
	once.Do(func() {
		pool, err := radix.NewPool("tcp", addr, 10)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		client = pool
	})
	return client
}

// Client はRedisクライアントを返す
func Client() radix.Client {
	return client
}
