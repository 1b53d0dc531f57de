package kvstore

import "context"

// Store простое key-value хранилище
// Значения хранятся как непрозрачные байты, сериализация на стороне вызывающего
type Store interface {
	// Get возвращает ErrKeyNotFound, если ключ отсутствует
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete не возвращает ошибку для отсутствующего ключа
	Delete(ctx context.Context, key string) error
}
