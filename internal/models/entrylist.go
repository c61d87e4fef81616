package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Entry is implemented by records stored inside an embedded List.
type Entry interface {
	Key() string
}

// List is an ordered collection of keyed records persisted as a single JSON
// column inside its parent row, mirroring a document store's embedded array.
// New entries go to the front; order is otherwise preserved.
type List[T Entry] []T

// Prepend inserts e at the front of the list.
func (l *List[T]) Prepend(e T) {
	*l = append(List[T]{e}, *l...)
}

// Find returns the entry with the given key.
func (l List[T]) Find(key string) (T, bool) {
	for _, e := range l {
		if e.Key() == key {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an entry with the given key exists.
func (l List[T]) Contains(key string) bool {
	_, ok := l.Find(key)
	return ok
}

// Remove deletes the first entry whose key matches and reports whether
// anything was removed. The boolean makes the miss policy the caller's
// explicit choice: profile list handlers treat a miss as a quiet no-op,
// comment deletion surfaces it as a 404.
func (l *List[T]) Remove(key string) bool {
	for i, e := range *l {
		if e.Key() == key {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Value implements driver.Valuer, serializing the list as JSON.
func (l List[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *List[T]) Scan(value any) error {
	if value == nil {
		*l = List[T]{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type %T for embedded list", value)
	}
}

// GormDataType tells GORM which column type to migrate for embedded lists.
func (l List[T]) GormDataType() string {
	return "jsonb"
}

// StringList is a JSON-backed ordered list of strings (profile skills).
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value any) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported column type %T for string list", value)
	}
}

// GormDataType tells GORM which column type to migrate.
func (s StringList) GormDataType() string {
	return "jsonb"
}
