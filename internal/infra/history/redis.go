package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
)

// ======================================================
// REDIS
// ======================================================

const keyPrefix = "chat_history:"

// RedisStore persiste o histórico no Redis, uma chave por cliente.
// Backend para implantações com mais de um processo atendendo o webhook.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("history: URL do redis inválida: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) Load(ctx context.Context, waID string) ([]domain.Message, error) {
	data, err := s.client.Get(ctx, keyPrefix+waID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: lendo histórico de %s: %w", waID, err)
	}

	var msgs []domain.Message
	if err := json.Unmarshal([]byte(data), &msgs); err != nil {
		return nil, fmt.Errorf("history: decodificando histórico de %s: %w", waID, err)
	}
	return msgs, nil
}

func (s *RedisStore) Save(ctx context.Context, waID string, msgs []domain.Message) error {
	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("history: serializando histórico de %s: %w", waID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+waID, data, 0).Err(); err != nil {
		return fmt.Errorf("history: gravando histórico de %s: %w", waID, err)
	}
	return nil
}
