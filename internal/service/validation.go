package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"randomizer-tools/internal/config"
	"randomizer-tools/internal/domain"
)

// ValidateItems проверяет размер списка и длину каждого элемента.
// Пустой список здесь допустим: строгость к пустому входу определяет сама операция.
func ValidateItems(items []string, limits config.LimitsConfig) error {
	if len(items) > limits.MaxItems {
		return fmt.Errorf("%w: too many items (max %d)", domain.ErrInvalidArgument, limits.MaxItems)
	}
	for i, item := range items {
		if utf8.RuneCountInString(item) > limits.MaxNameLength {
			return fmt.Errorf("%w: item %d too long (max %d characters)", domain.ErrInvalidArgument, i, limits.MaxNameLength)
		}
	}
	return nil
}

// ValidateWheelName проверяет имя колеса.
func ValidateWheelName(name string, limits config.LimitsConfig) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: wheel name cannot be empty", domain.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(name) > limits.MaxNameLength {
		return fmt.Errorf("%w: wheel name too long (max %d characters)", domain.ErrInvalidArgument, limits.MaxNameLength)
	}
	return nil
}

// ValidateWheelEntries проверяет, что у колеса есть записи и у каждой есть имя.
func ValidateWheelEntries(entries []domain.WheelEntry, limits config.LimitsConfig) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: wheel must have at least one entry", domain.ErrInvalidArgument)
	}
	if len(entries) > limits.MaxItems {
		return fmt.Errorf("%w: too many entries (max %d)", domain.ErrInvalidArgument, limits.MaxItems)
	}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return fmt.Errorf("%w: entry %d has empty name", domain.ErrInvalidArgument, i)
		}
		if utf8.RuneCountInString(entry.Name) > limits.MaxNameLength {
			return fmt.Errorf("%w: entry %d too long (max %d characters)", domain.ErrInvalidArgument, i, limits.MaxNameLength)
		}
	}
	return nil
}

// ValidateWheelID проверяет, что ID колеса является UUID.
func ValidateWheelID(wheelID string) error {
	if _, err := uuid.Parse(wheelID); err != nil {
		return fmt.Errorf("%w: wheel ID must be a UUID", domain.ErrInvalidArgument)
	}
	return nil
}
