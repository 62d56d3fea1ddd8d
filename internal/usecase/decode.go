package usecase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

// ErrMalformedEntry — запись потока невозможно привести к статье.
// Такая запись считается окончательно бракованной: повторная обработка не поможет.
var ErrMalformedEntry = errors.New("malformed stream entry")

// decodeArticle — привести поля записи потока к доменной статье.
// Поддерживаемые формы записи:
//  1. запись с единственным полем, значение которого — JSON-строка статьи;
//  2. запись с единственным полем, значение которого — уже распакованный объект;
//  3. запись с несколькими полями — сами поля и есть статья.
func decodeArticle(payload map[string]any) (*domain.ArticleRecord, map[string]any, error) {
	raw, err := articleFields(payload)
	if err != nil {
		return nil, nil, err
	}

	// Перегоняем map в доменную структуру через JSON: это даёт тот же
	// разбор по именам полей, что и при чтении из исходного источника.
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}

	var article domain.ArticleRecord
	if err := json.Unmarshal(buf, &article); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return &article, raw, nil
}

// articleFields — извлечь объект статьи из полей записи потока.
func articleFields(payload map[string]any) (map[string]any, error) {
	switch len(payload) {
	case 0:
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEntry)
	case 1:
		for _, v := range payload {
			switch val := v.(type) {
			case string:
				var raw map[string]any
				if err := json.Unmarshal([]byte(val), &raw); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
				}
				return raw, nil
			case map[string]any:
				return val, nil
			default:
				return nil, fmt.Errorf("%w: unsupported field type %T", ErrMalformedEntry, v)
			}
		}
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEntry)
	default:
		return payload, nil
	}
}
