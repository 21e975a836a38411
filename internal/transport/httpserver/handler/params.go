package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func parseMonthYear(monthValue, yearValue string) (int, int, error) {
	month, err := parseIntRequired(monthValue)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month")
	}
	year, err := parseIntRequired(yearValue)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year")
	}
	return month, year, nil
}

func parseIntRequired(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("value is required")
	}
	return strconv.Atoi(value)
}

// parseDateParam accepts a date with or without a time component.
func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
