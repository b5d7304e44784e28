package devapi

import (
	"context"
	"fmt"
	"time"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/redis/go-redis/v9"
)

// Redis representa la conexión a Redis usada por el rate limiter
type Redis struct {
	*redis.Client
}

// ConnectRedis establece la conexión a Redis
func ConnectRedis(cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Verificar conexión
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error pinging Redis: %w", err)
	}

	return &Redis{client}, nil
}

// Close cierra la conexión a Redis
func (r *Redis) Close() error {
	return r.Client.Close()
}

// ContarVentana incrementa el contador de la ventana y retorna su valor
//
// La clave expira sola al terminar la ventana; el primer incremento la
// arma con el TTL completo.
func (r *Redis) ContarVentana(ctx context.Context, clave string, ventana time.Duration) (int64, error) {
	cuenta, err := r.Incr(ctx, clave).Result()
	if err != nil {
		return 0, err
	}
	if cuenta == 1 {
		if err := r.Expire(ctx, clave, ventana).Err(); err != nil {
			return cuenta, err
		}
	}
	return cuenta, nil
}
