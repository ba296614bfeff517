package schedule

import "time"

const DateLayout = "2006-01-02"

// Policy define quais datas a barbearia aceita agendamentos.
type Policy struct {
	Weekdays    map[time.Weekday]bool
	HorizonDays int
	Location    *time.Location
}

// DefaultPolicy: segunda a sábado, 30 dias de janela.
func DefaultPolicy() Policy {
	return Policy{
		Weekdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		HorizonDays: 30,
		Location:    time.UTC,
	}
}

// IsBookable diz se a data aceita agendamentos em relação a now.
// Nunca retorna erro: data inválida ou fora da política é apenas false.
func (p Policy) IsBookable(date time.Time, now time.Time) bool {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	day := midnight(date.In(loc))
	today := midnight(now.In(loc))

	if day.Before(today) {
		return false
	}

	if p.HorizonDays > 0 && day.After(today.AddDate(0, 0, p.HorizonDays)) {
		return false
	}

	return p.Weekdays[day.Weekday()]
}

// IsBookableDate aplica IsBookable sobre uma data "2006-01-02".
// Formato inválido conta como não agendável.
func (p Policy) IsBookableDate(date string, now time.Time) bool {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return false
	}
	return p.IsBookable(d, now)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
