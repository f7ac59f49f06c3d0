package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta datas no formato AAAA-MM-DD; string vazia retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDateRange lê um intervalo fechado. O fim inclui o dia inteiro.
func ParseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	from, err = ParseDate(fromStr)
	if err != nil {
		return nil, nil, fmt.Errorf("data inicial inválida: %w", err)
	}

	to, err = ParseDate(toStr)
	if err != nil {
		return nil, nil, fmt.Errorf("data final inválida: %w", err)
	}

	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("data inicial posterior à data final")
	}

	return from, to, nil
}
