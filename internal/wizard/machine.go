package wizard

import (
	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// Step шаг мастера записи
type Step int

// Шаги мастера: линейный порядок без ветвлений
const (
	StepLocation Step = iota + 1
	StepServices
	StepProfessional
	StepDate
	StepSummary
)

// String возвращает человекочитаемое имя шага
func (s Step) String() string {
	switch s {
	case StepLocation:
		return "location"
	case StepServices:
		return "services"
	case StepProfessional:
		return "professional"
	case StepDate:
		return "date"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Payload собранные данные записи для отправки
type Payload struct {
	Location       string
	ServiceIDs     []string
	ProfessionalID string
	Date           types.DateString
}

// Machine машина состояний мастера записи.
// Не потокобезопасна: за синхронизацию отвечает Manager.
type Machine struct {
	step           Step
	location       domain.BookingLocation
	serviceIDs     []string
	professionalID string
	date           types.DateString
	availableDates []types.DateString
}

// NewMachine создает мастер на первом шаге
func NewMachine() *Machine {
	return &Machine{step: StepLocation}
}

// Step возвращает текущий шаг
func (m *Machine) Step() Step {
	return m.step
}

// Location возвращает выбранное место оказания услуги
func (m *Machine) Location() domain.BookingLocation {
	return m.location
}

// ServiceIDs возвращает выбранные услуги в порядке выбора
func (m *Machine) ServiceIDs() []string {
	result := make([]string, len(m.serviceIDs))
	copy(result, m.serviceIDs)
	return result
}

// ProfessionalID возвращает выбранного специалиста
func (m *Machine) ProfessionalID() string {
	return m.professionalID
}

// Date возвращает выбранную дату
func (m *Machine) Date() types.DateString {
	return m.date
}

// AvailableDates возвращает доступные даты для выбранного специалиста
func (m *Machine) AvailableDates() []types.DateString {
	result := make([]types.DateString, len(m.availableDates))
	copy(result, m.availableDates)
	return result
}

// SetLocation выбирает место оказания услуги
func (m *Machine) SetLocation(location domain.BookingLocation) error {
	if !domain.ValidLocation(location) {
		return ErrInvalidLocation
	}
	m.location = location
	return nil
}

// ToggleService добавляет услугу в выбор или убирает уже выбранную.
// Порядок выбора сохраняется.
func (m *Machine) ToggleService(serviceID string) {
	for i, id := range m.serviceIDs {
		if id == serviceID {
			m.serviceIDs = append(m.serviceIDs[:i], m.serviceIDs[i+1:]...)
			return
		}
	}
	m.serviceIDs = append(m.serviceIDs, serviceID)
}

// SelectProfessional выбирает специалиста.
// Смена специалиста сбрасывает ранее выбранную дату и набор доступных дат:
// занятость нового специалиста нужно пересчитать заново.
func (m *Machine) SelectProfessional(professionalID string) {
	if m.professionalID == professionalID {
		return
	}
	m.professionalID = professionalID
	m.date = ""
	m.availableDates = nil
}

// SetAvailableDates задает пересчитанный набор доступных дат специалиста
func (m *Machine) SetAvailableDates(dates []types.DateString) {
	m.availableDates = make([]types.DateString, len(dates))
	copy(m.availableDates, dates)
}

// SelectDate выбирает дату. Дата должна входить в набор доступных дат.
func (m *Machine) SelectDate(date types.DateString) error {
	for _, d := range m.availableDates {
		if d == date {
			m.date = date
			return nil
		}
	}
	return ErrDateNotAvailable
}

// Next переходит на следующий шаг, если условие текущего шага выполнено.
// При невыполненном условии состояние не меняется.
func (m *Machine) Next() error {
	if !m.stepComplete() {
		return ErrStepIncomplete
	}
	if m.step < StepSummary {
		m.step++
	}
	return nil
}

// Back безусловно возвращается на предыдущий шаг
func (m *Machine) Back() error {
	if m.step <= StepLocation {
		return ErrAtFirstStep
	}
	m.step--
	return nil
}

// BuildPayload собирает данные записи на финальном шаге
func (m *Machine) BuildPayload() (*Payload, error) {
	if m.step != StepSummary {
		return nil, ErrNotAtSummary
	}

	return &Payload{
		Location:       string(m.location),
		ServiceIDs:     m.ServiceIDs(),
		ProfessionalID: m.professionalID,
		Date:           m.date,
	}, nil
}

// Reset возвращает мастер на первый шаг и очищает все выборы
func (m *Machine) Reset() {
	*m = Machine{step: StepLocation}
}

// stepComplete проверяет условие перехода с текущего шага
func (m *Machine) stepComplete() bool {
	switch m.step {
	case StepLocation:
		return m.location != ""
	case StepServices:
		return len(m.serviceIDs) > 0
	case StepProfessional:
		return m.professionalID != ""
	case StepDate:
		// Пустой набор доступных дат — тупик: дальше пройти нельзя,
		// пользователь должен вернуться и выбрать другого специалиста
		return !m.date.IsZero() && len(m.availableDates) > 0
	case StepSummary:
		return false
	default:
		return false
	}
}
