package nower

import "time"

// Nower отдаёт текущее время для отметок created_at/spun_at.
// Вынесено в интерфейс, чтобы в тестах хранилища время было фиксированным.
type Nower interface {
	Now() time.Time
}
