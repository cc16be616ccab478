package entity

// AreaSpec: нормализованный кросс-сервер DNF.
type AreaSpec struct {
	Slug    string `json:"slug"`    // kua2, kua3a
	Display string `json:"display"` // 2, 3A
}
