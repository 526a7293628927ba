package domain

import (
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrForeignKey     = errors.New("foreign key violation")
	ErrUnknown        = errors.New("unknown error")

	// ErrCredentialsInvalid единая ошибка для любой неудачной попытки входа: неизвестный email,
	// неверный пароль или некорректный формат данных.
	ErrCredentialsInvalid = errors.New("invalid credentials")
	// ErrSystem сбой инфраструктуры во время аутентификации. Не должен показываться как неверные данные.
	ErrSystem = errors.New("system error")
)
