package domain

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// MaxAmountCents верхняя граница суммы счета, колонка invoices.amount имеет тип INT.
const MaxAmountCents = math.MaxInt32

var (
	centsMultiplier = decimal.NewFromInt(100)
	maxAmountCents  = decimal.NewFromInt(MaxAmountCents)
)

// ParseDollars разбирает введенную пользователем сумму в долларах. Пустая строка и нечисловые значения
// возвращают ErrInvalidAmount.
func ParseDollars(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// DollarsToCents переводит доллары в центы: round(dollars * 100). Суммы вне (0, MaxAmountCents] центов
// возвращают ErrInvalidAmount.
func DollarsToCents(dollars decimal.Decimal) (int64, error) {
	cents := dollars.Mul(centsMultiplier).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(maxAmountCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// CentsToDollars обратное преобразование для отображения.
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCurrency форматирует сумму в центах в вид $1,234.56.
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	fixed := CentsToDollars(cents).StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}
