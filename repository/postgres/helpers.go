package postgres

import (
	"encoding/json"
	"time"
)

func marshalMap[K comparable, V any](data map[K]V) []byte {
	if len(data) == 0 {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return b
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
