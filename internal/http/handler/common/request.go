package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DecodeJSON читает тело запроса в dst.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewBadRequestError("INVALID_BODY", "не удалось прочитать тело запроса")
	}
	return nil
}

// QueryInt читает целочисленный query-параметр. Отсутствующий параметр даёт def.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewBadRequestError("VALIDATION_ERROR", fmt.Sprintf("%s должен быть целым числом", name))
	}
	return value, nil
}

// RequiredQueryInt читает обязательный целочисленный query-параметр.
func RequiredQueryInt(r *http.Request, name string) (int, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, NewBadRequestError("VALIDATION_ERROR", fmt.Sprintf("%s обязателен", name))
	}
	return QueryInt(r, name, 0)
}

// RequiredQuery читает обязательный строковый query-параметр.
func RequiredQuery(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return "", NewBadRequestError("VALIDATION_ERROR", fmt.Sprintf("%s обязателен", name))
	}
	return value, nil
}
