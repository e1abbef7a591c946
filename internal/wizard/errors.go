package wizard

import "errors"

var (
	// ErrStepIncomplete возвращается при попытке перейти вперед с незаполненным шагом
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")

	// ErrAtFirstStep возвращается при попытке вернуться назад с первого шага
	ErrAtFirstStep = errors.New("wizard: already at the first step")

	// ErrNotAtSummary возвращается при попытке собрать данные записи не на финальном шаге
	ErrNotAtSummary = errors.New("wizard: not at the summary step")

	// ErrInvalidLocation возвращается при выборе неизвестного места оказания услуги
	ErrInvalidLocation = errors.New("wizard: invalid location")

	// ErrDateNotAvailable возвращается при выборе даты вне доступного набора
	ErrDateNotAvailable = errors.New("wizard: date is not available")
)
