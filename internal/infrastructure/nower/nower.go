package nower

import "time"

type utcNower struct {
	precision time.Duration
}

// New создаёт часы, которые возвращают UTC-время, усечённое до микросекунд.
// PostgreSQL хранит timestamptz с точностью до микросекунды, поэтому значения совпадают после чтения из БД.
func New() Nower {
	return &utcNower{precision: time.Microsecond}
}

// Now возвращает текущее время в UTC.
func (n *utcNower) Now() time.Time {
	return time.Now().UTC().Truncate(n.precision)
}
