package domain

import "errors"

// Доменные ошибки, используемые для обработки бизнес-логики.
// Эти ошибки преобразуются в HTTP-ответы в слое обработчиков.
var (
	ErrInvalidArgument = errors.New("invalid argument")      // Нарушено предусловие операции: пустой список, неверный диапазон, число команд.
	ErrWheelNotFound   = errors.New("wheel not found")       // Возникает при обращении к несуществующему колесу.
	ErrWheelExists     = errors.New("wheel already exists")  // Возникает при создании колеса с уже занятым именем.
	ErrEntryNotFound   = errors.New("wheel entry not found") // Возникает, если запись уже удалена параллельным вращением.
)
