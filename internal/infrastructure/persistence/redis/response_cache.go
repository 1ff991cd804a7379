package redis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
)

const (
	breakerName = "redis-response-cache"
	scanBatch   = 100
)

// ResponseCache GET响应的JSON缓存
// 1. Key: {prefix}:{namespace}:{path}?{query}
// 2. 空值与null不缓存
// 3. 所有Redis调用经过熔断器,Redis不可用时调用方按未命中处理
type ResponseCache struct {
	client  *redis.Client
	ttl     time.Duration
	prefix  string
	breaker *circuitbreaker.CircuitBreaker
}

// NewResponseCache 创建响应缓存
func NewResponseCache(client *redis.Client, cfg config.CacheConfig) *ResponseCache {
	metrics.InitMetrics()

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "cache"
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	breaker := circuitbreaker.NewCircuitBreaker(breakerName, circuitbreaker.Config{
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(c circuitbreaker.Counts) bool { return c.ConsecutiveFailures >= failures },
		// key不存在不是故障
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, redis.Nil) },
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			slog.Warn("熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		},
	})

	return &ResponseCache{client: client, ttl: ttl, prefix: prefix, breaker: breaker}
}

// TTL 缓存有效期
func (c *ResponseCache) TTL() time.Duration {
	return c.ttl
}

// Key 生成缓存key,query为空时不带"?"
func (c *ResponseCache) Key(namespace, path, rawQuery string) string {
	var b strings.Builder
	b.WriteString(c.prefix)
	b.WriteByte(':')
	b.WriteString(namespace)
	b.WriteByte(':')
	b.WriteString(path)
	if rawQuery != "" {
		b.WriteByte('?')
		b.WriteString(rawQuery)
	}
	return b.String()
}

// Get 读取缓存
// 未命中返回(nil, false, nil);Redis故障或熔断返回error,调用方应降级为直接处理请求
func (c *ResponseCache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	var value []byte
	err := c.execute(func() error {
		var err error
		value, err = c.client.Get(ctx, key).Bytes()
		return err
	})

	switch {
	case err == nil:
		metrics.CacheResult(namespace, "hit")
		return value, true, nil
	case errors.Is(err, redis.Nil):
		metrics.CacheResult(namespace, "miss")
		return nil, false, nil
	default:
		metrics.CacheResult(namespace, "error")
		return nil, false, err
	}
}

// Set 写入缓存,value为空或null时跳过
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte) error {
	if len(value) == 0 || string(value) == "null" {
		return nil
	}
	return c.execute(func() error {
		return c.client.Set(ctx, key, value, c.ttl).Err()
	})
}

// EvictNamespace 清理命名空间下的全部key(SCAN + DEL,不阻塞Redis)
// 返回删除的key数
func (c *ResponseCache) EvictNamespace(ctx context.Context, namespace string) (int, error) {
	pattern := c.prefix + ":" + namespace + ":*"
	deleted := 0

	err := c.execute(func() error {
		var cursor uint64
		for {
			keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
			if err != nil {
				return err
			}
			if len(keys) > 0 {
				n, err := c.client.Del(ctx, keys...).Result()
				if err != nil {
					return err
				}
				deleted += int(n)
			}
			cursor = next
			if cursor == 0 {
				return nil
			}
		}
	})
	if err != nil {
		return deleted, err
	}

	metrics.IncCounterVec(metrics.CacheEvictionsTotal, map[string]string{"namespace": namespace})
	return deleted, nil
}

// BreakerState 熔断器当前状态
func (c *ResponseCache) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}

func (c *ResponseCache) execute(fn func() error) error {
	err := c.breaker.Execute(fn)

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil && !errors.Is(err, redis.Nil):
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": breakerName, "result": result})
	return err
}
