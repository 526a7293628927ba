package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// DecodeJSON читает и закрывает тело ответа.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return json.Unmarshal(body, v) //nolint:wrapcheck
}
