package worker

import (
	"slices"

	"dnf_rate/internal/domain/entity"
)

// AddArea добавляет зону в список; false: уже была.
func (w *RateWatcher) AddArea(area entity.AreaSpec) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.hasArea(area.Slug) {
		return false
	}

	w.areas = append(w.areas, area)

	return true
}

// RemoveArea удаляет зону, сохраняя порядок остальных; false: не было.
func (w *RateWatcher) RemoveArea(slug string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, existing := range w.areas {
		if existing.Slug == slug {
			w.areas = slices.Delete(w.areas, i, i+1)
			return true
		}
	}

	return false
}

// Areas возвращает копию текущего списка.
func (w *RateWatcher) Areas() []entity.AreaSpec {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.areas) == 0 {
		return nil
	}

	return slices.Clone(w.areas)
}

// SetAreas заменяет список; дубликаты по slug отбрасываются.
func (w *RateWatcher) SetAreas(areas []entity.AreaSpec) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.areas = nil

	for _, area := range areas {
		if !w.hasArea(area.Slug) {
			w.areas = append(w.areas, area)
		}
	}
}

// ClearAreas очищает список; запущенный планировщик продолжает работу
// вхолостую до следующего /watchadd.
func (w *RateWatcher) ClearAreas() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.areas = nil
}

func (w *RateWatcher) hasArea(slug string) bool {
	return slices.ContainsFunc(w.areas, func(a entity.AreaSpec) bool { return a.Slug == slug })
}
