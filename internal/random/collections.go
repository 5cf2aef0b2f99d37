package random

// PickRandom возвращает случайный элемент непустого списка. Каждый элемент выбирается с вероятностью 1/n.
func PickRandom[T any](s *Service, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, invalidArgument("list cannot be empty")
	}
	return items[s.intn(len(items))], nil
}

// Shuffle возвращает перемешанную копию items, исходный срез не меняется.
// Пустой или nil вход даёт пустой результат без ошибки, в отличие от PickRandom.
func Shuffle[T any](s *Service, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	// Fisher-Yates: j берётся из [0, i] включительно.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// CreateRandomTeams перемешивает items и раздаёт их по teamCount командам по кругу.
// Размеры команд отличаются не более чем на единицу, пустых команд не бывает.
func CreateRandomTeams[T any](s *Service, items []T, teamCount int) ([][]T, error) {
	if len(items) == 0 {
		return nil, invalidArgument("list cannot be empty")
	}
	if teamCount < 1 || teamCount > len(items) {
		return nil, invalidArgument("team count must be in [1, %d], got %d", len(items), teamCount)
	}

	shuffled := Shuffle(s, items)
	teams := make([][]T, teamCount)
	for i := range teams {
		teams[i] = make([]T, 0, (len(shuffled)+teamCount-1)/teamCount)
	}
	for i, item := range shuffled {
		teams[i%teamCount] = append(teams[i%teamCount], item)
	}
	return teams, nil
}
