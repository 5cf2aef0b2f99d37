package service

import (
	"fmt"

	"randomizer-tools/internal/domain"
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
