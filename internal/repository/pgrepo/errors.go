package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode           = "23505"
	foreignKeyViolationCode       = "23503"
	invalidTextRepresentationCode = "22P02"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Некорректный идентификатор (например, не uuid) тоже считается отсутствием записи.
//   - Дубликаты ключей (uniqueViolationCode) возвращаются как ErrDuplicateKey, нарушение внешнего ключа - как
//     ErrForeignKey.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrForeignKey
		case invalidTextRepresentationCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
