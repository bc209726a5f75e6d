package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
)

// ======================================================
// ARQUIVO JSON
// ======================================================

// FileStore persiste o histórico num único arquivo JSON: um mapa de
// wa_id para a lista de mensagens, reescrito por inteiro a cada mutação.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = "chat_history.json"
	}
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context, waID string) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	return all[waID], nil
}

func (s *FileStore) Save(ctx context.Context, waID string, msgs []domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return err
	}
	all[waID] = msgs

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("history: serializando histórico: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("history: gravando %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) readAll() (map[string][]domain.Message, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string][]domain.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: lendo %s: %w", s.path, err)
	}

	all := map[string][]domain.Message{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("history: decodificando %s: %w", s.path, err)
	}
	return all, nil
}
