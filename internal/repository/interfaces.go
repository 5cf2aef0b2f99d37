package repository

import (
	"context"

	"randomizer-tools/internal/domain"
)

// Repository объединяет все доменные репозитории.
type Repository interface {
	WheelRepository
	SpinRepository
}

// WheelRepository содержит операции для работы с колёсами имён.
type WheelRepository interface {
	CreateWheel(ctx context.Context, wheel domain.Wheel) (domain.Wheel, error)
	GetWheel(ctx context.Context, wheelID string) (domain.Wheel, error)
	RemoveEntry(ctx context.Context, wheelID string, position int) error
}

// SpinRepository содержит операции для истории вращений.
type SpinRepository interface {
	RecordSpin(ctx context.Context, spin domain.Spin) (domain.Spin, error)
	ListSpins(ctx context.Context, wheelID string, limit int) ([]domain.Spin, error)
}

// HealthChecker описывает метод проверки соединения.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
