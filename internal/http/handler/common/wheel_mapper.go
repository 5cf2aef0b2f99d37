package common

import "randomizer-tools/internal/domain"

// ItemsRequest тело запросов, работающих со списком строк.
type ItemsRequest struct {
	Items []string `json:"items"`
}

// EntryRequest описывает запись колеса во входящем запросе.
type EntryRequest struct {
	Name string `json:"name"`
}

// ToDomainEntries преобразует записи запроса в доменные. Позиции назначает хранилище.
func ToDomainEntries(req []EntryRequest) []domain.WheelEntry {
	entries := make([]domain.WheelEntry, 0, len(req))
	for _, e := range req {
		entries = append(entries, domain.WheelEntry{Name: e.Name})
	}
	return entries
}

// NonNilSpins гарантирует, что пустая история сериализуется как [].
func NonNilSpins(spins []domain.Spin) []domain.Spin {
	if spins == nil {
		return []domain.Spin{}
	}
	return spins
}
