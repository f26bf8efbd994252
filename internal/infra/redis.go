package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis abre el cliente compartido por la cache de la carta y las colas de
// trabajos. Los workers mantienen conexiones bloqueadas en BRPOP, así que el
// pool se dimensiona por encima del número de workers y el timeout de lectura
// debe superar el tiempo de bloqueo del BRPOP (5s).
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: URL inválida: %w", err)
	}

	opts.PoolSize = 20
	opts.MinIdleConns = 2
	opts.DialTimeout = 3 * time.Second
	opts.ReadTimeout = 8 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return rdb, nil
}
