package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
)

type OrderInput struct {
	CustomerName string
	ProductID    string
	Quantity     int
	UnitPrice    *decimal.Decimal
	Status       model.OrderStatus
	Date         string
}

// ParseQuantity accepts a positive whole number. Blank or non-numeric input is
// rejected rather than read as zero.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.Validation("quantity required")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, apperr.Validation("invalid quantity")
	}
	return n, nil
}

// ParseUnitPrice accepts a non-negative decimal. Blank input yields nil.
func ParseUnitPrice(raw string) (*decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, apperr.Validation("invalid price")
	}
	return &d, nil
}

// ParseStatus matches a recognized status case-insensitively. Blank input
// yields "".
func ParseStatus(raw string) (model.OrderStatus, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	for _, st := range model.OrderStatuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", apperr.Validationf("invalid status %q", s)
}

func ParseDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", apperr.Validationf("invalid date %q", s)
	}
	return s, nil
}
