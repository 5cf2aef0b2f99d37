package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	trm "github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"randomizer-tools/internal/config"
	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/infrastructure/randomizer"
	"randomizer-tools/internal/logging"
	"randomizer-tools/internal/metrics"
	"randomizer-tools/internal/random"
	"randomizer-tools/internal/repository"
)

// Repository описывает операции, которые требуются сервису.
type Repository interface {
	repository.Repository
}

// Service агрегирует бизнес-логику приложения.
type Service struct {
	repo   Repository
	health repository.HealthChecker
	cfg    config.Config
	trMgr  trm.Manager
	random *random.Service
	newID  func() string
}

func New(repo Repository, cfg config.Config, trMgr trm.Manager, gen randomizer.Randomizer) *Service {
	cfg.Normalize()
	svc := &Service{
		repo:   repo,
		cfg:    cfg,
		trMgr:  trMgr,
		random: random.New(gen),
		newID:  uuid.NewString,
	}
	if checker, ok := repo.(repository.HealthChecker); ok {
		svc.health = checker
	}
	return svc
}

// RandomInt возвращает число из [min, max).
func (s *Service) RandomInt(ctx context.Context, min, max int) (int, error) {
	value, err := s.random.UniformInt(min, max)
	s.observe(ctx, metrics.OperationInt, err)
	return value, err
}

// PickItem выбирает случайный элемент из списка.
func (s *Service) PickItem(ctx context.Context, items []string) (string, error) {
	if err := ValidateItems(items, s.cfg.Limits); err != nil {
		s.observe(ctx, metrics.OperationPick, err)
		return "", err
	}
	item, err := random.PickRandom(s.random, items)
	s.observe(logging.WithLogEntriesCount(ctx, len(items)), metrics.OperationPick, err)
	return item, err
}

// ShuffleItems возвращает перемешанную копию списка. Пустой список не является ошибкой.
func (s *Service) ShuffleItems(ctx context.Context, items []string) ([]string, error) {
	if err := ValidateItems(items, s.cfg.Limits); err != nil {
		s.observe(ctx, metrics.OperationShuffle, err)
		return nil, err
	}
	shuffled := random.Shuffle(s.random, items)
	s.observe(logging.WithLogEntriesCount(ctx, len(items)), metrics.OperationShuffle, nil)
	return shuffled, nil
}

// FlipCoin подбрасывает монету.
func (s *Service) FlipCoin(ctx context.Context) domain.CoinSide {
	side := domain.SideOf(s.random.FlipCoin())
	s.observe(ctx, metrics.OperationCoin, nil)
	return side
}

// RollDice бросает count костей с sides гранями.
func (s *Service) RollDice(ctx context.Context, sides, count int) (domain.DiceRoll, error) {
	if count > s.cfg.Limits.MaxDiceCount {
		err := invalidArgument("dice count too large (max %d)", s.cfg.Limits.MaxDiceCount)
		s.observe(ctx, metrics.OperationDice, err)
		return domain.DiceRoll{}, err
	}
	roll, err := s.random.RollDiceN(count, sides)
	s.observe(ctx, metrics.OperationDice, err)
	return roll, err
}

// SplitTeams делит список на teamCount случайных команд.
func (s *Service) SplitTeams(ctx context.Context, items []string, teamCount int) ([][]string, error) {
	if err := ValidateItems(items, s.cfg.Limits); err != nil {
		s.observe(ctx, metrics.OperationTeams, err)
		return nil, err
	}
	teams, err := random.CreateRandomTeams(s.random, items, teamCount)
	s.observe(logging.WithLogEntriesCount(ctx, len(items)), metrics.OperationTeams, err)
	return teams, err
}

// CreateWheel создаёт колесо имён вместе с записями в одной транзакции.
func (s *Service) CreateWheel(ctx context.Context, name string, entries []domain.WheelEntry) (domain.Wheel, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	if err := ValidateWheelName(name, s.cfg.Limits); err != nil {
		return domain.Wheel{}, err
	}
	if err := ValidateWheelEntries(entries, s.cfg.Limits); err != nil {
		return domain.Wheel{}, err
	}

	wheel := domain.Wheel{
		ID:      s.newID(),
		Name:    strings.TrimSpace(name),
		Entries: entries,
	}
	ctx = logging.WithLogWheelID(ctx, wheel.ID)
	ctx = logging.WithLogWheelName(ctx, wheel.Name)

	var created domain.Wheel
	err := s.trMgr.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateWheel(ctx, wheel)
		return err
	})
	if err != nil {
		return domain.Wheel{}, logging.WrapError(ctx, err)
	}
	metrics.IncWheelsCreated()
	slog.InfoContext(logging.WithLogEntriesCount(ctx, len(created.Entries)), "wheel created")
	return created, nil
}

// GetWheel возвращает колесо.
func (s *Service) GetWheel(ctx context.Context, wheelID string) (domain.Wheel, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	if err := ValidateWheelID(wheelID); err != nil {
		return domain.Wheel{}, err
	}
	return s.repo.GetWheel(ctx, wheelID)
}

// ShuffleWheel возвращает колесо с записями в случайном порядке. Порядок в хранилище не меняется.
func (s *Service) ShuffleWheel(ctx context.Context, wheelID string) (domain.Wheel, error) {
	wheel, err := s.GetWheel(ctx, wheelID)
	if err != nil {
		return domain.Wheel{}, err
	}
	wheel.Entries = random.Shuffle(s.random, wheel.Entries)
	s.observe(logging.WithLogWheelID(ctx, wheelID), metrics.OperationShuffle, nil)
	return wheel, nil
}

// SpinWheel выбирает случайную запись колеса и сохраняет результат в историю.
// При removeWinner победитель удаляется с колеса в той же транзакции.
func (s *Service) SpinWheel(ctx context.Context, wheelID string, removeWinner bool) (domain.Spin, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	if err := ValidateWheelID(wheelID); err != nil {
		return domain.Spin{}, err
	}
	ctx = logging.WithLogWheelID(ctx, wheelID)

	var spin domain.Spin
	err := s.trMgr.Do(ctx, func(ctx context.Context) error {
		wheel, err := s.repo.GetWheel(ctx, wheelID)
		if err != nil {
			return err
		}
		winner, err := random.PickRandom(s.random, wheel.Entries)
		if err != nil {
			return err
		}
		spin, err = s.repo.RecordSpin(ctx, domain.Spin{
			ID:      s.newID(),
			WheelID: wheel.ID,
			Entry:   winner.Name,
			Removed: removeWinner,
		})
		if err != nil {
			return err
		}
		if removeWinner {
			return s.repo.RemoveEntry(ctx, wheel.ID, winner.Position)
		}
		return nil
	})
	s.observe(ctx, metrics.OperationSpin, err)
	if err != nil {
		return domain.Spin{}, logging.WrapError(ctx, err)
	}
	if spin.Removed {
		metrics.IncEntriesRemoved()
	}
	return spin, nil
}

// WheelHistory возвращает последние вращения колеса. limit <= 0 означает значение из конфигурации.
func (s *Service) WheelHistory(ctx context.Context, wheelID string, limit int) ([]domain.Spin, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	if err := ValidateWheelID(wheelID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > s.cfg.Limits.HistoryLimit {
		limit = s.cfg.Limits.HistoryLimit
	}
	if _, err := s.repo.GetWheel(ctx, wheelID); err != nil {
		return nil, err
	}
	return s.repo.ListSpins(ctx, wheelID, limit)
}

// HealthCheck возвращает состояние зависимостей сервиса.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	ctx, cancel := s.operationContext(ctx)
	defer cancel()
	return s.health.Ping(ctx)
}

// operationContext создаёт контекст с таймаутом для операций с хранилищем.
func (s *Service) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Timeouts.Operation)
}

// observe учитывает результат операции в метриках и пишет отладочный лог.
func (s *Service) observe(ctx context.Context, operation string, err error) {
	ctx = logging.WithLogOperation(ctx, operation)
	switch {
	case err == nil:
		metrics.IncDraws(operation)
		slog.DebugContext(ctx, "draw completed")
	case errors.Is(err, domain.ErrInvalidArgument):
		metrics.IncRejectedDraws(operation)
		slog.DebugContext(ctx, "draw rejected", "error", err)
	}
}
