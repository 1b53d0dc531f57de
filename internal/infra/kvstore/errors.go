package kvstore

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kvstore: key not found")

	// ErrRead возвращается при ошибке чтения значения
	ErrRead = errors.New("kvstore: failed to read value")

	// ErrWrite возвращается при ошибке записи значения
	ErrWrite = errors.New("kvstore: failed to write value")
)
