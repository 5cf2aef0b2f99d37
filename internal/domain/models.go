package domain

import "time"

// CoinSide отражает сторону монеты.
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// SideOf переводит результат FlipCoin в сторону монеты: true означает орёл.
func SideOf(heads bool) CoinSide {
	if heads {
		return CoinHeads
	}
	return CoinTails
}

// WheelEntry описывает одну ячейку колеса имён.
// Position задаётся хранилищем и идентифицирует ячейку внутри колеса.
type WheelEntry struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Names возвращает имена записей в исходном порядке.
func Names(entries []WheelEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Wheel описывает сохранённое колесо и его записи.
type Wheel struct {
	ID        string       `json:"wheel_id"`
	Name      string       `json:"name"`
	Entries   []WheelEntry `json:"entries"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Spin содержит результат одного вращения колеса.
type Spin struct {
	ID      string    `json:"spin_id"`
	WheelID string    `json:"wheel_id"`
	Entry   string    `json:"entry"`
	Removed bool      `json:"removed"`
	SpunAt  time.Time `json:"spunAt"`
}

// DiceRoll содержит результат броска нескольких одинаковых костей.
type DiceRoll struct {
	Sides int   `json:"sides"`
	Rolls []int `json:"rolls"`
	Total int   `json:"total"`
}
