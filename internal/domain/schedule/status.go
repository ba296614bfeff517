package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusPending
}

// Valid informa se s pertence ao vocabulário canônico.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active marca os status que ocupam o slot. Agendamentos cancelados
// liberam o horário.
func (s Status) Active() bool {
	return s.Valid() && s != StatusCancelled
}
