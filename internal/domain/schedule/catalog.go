package schedule

import "fmt"

// allSlots é o catálogo fixo de horários de início: 08:00–20:00 em passos
// de 30 minutos, sem o intervalo do meio-dia. É o mesmo para todos os
// barbeiros e todas as datas.
var allSlots = []string{
	"08:00", "08:30",
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
	"18:00", "18:30",
	"19:00", "19:30",
	"20:00",
}

// Catalog devolve uma cópia do catálogo completo, na ordem do dia.
func Catalog() []string {
	out := make([]string, len(allSlots))
	copy(out, allSlots)
	return out
}

// Contains informa se t é um horário de início válido do catálogo.
func Contains(t string) bool {
	for _, slot := range allSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// Subtract devolve o catálogo menos os horários ocupados, preservando a
// ordem.
func Subtract(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	out := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if !taken[slot] {
			out = append(out, slot)
		}
	}
	return out
}

// Generate produz horários "HH:MM" de start até end (inclusivo) com o
// intervalo dado, para janelas arbitrárias (seed e testes).
func Generate(start, end string, intervalMin int) []string {
	if intervalMin <= 0 {
		intervalMin = 30
	}

	startMin, ok1 := toMinutes(start)
	endMin, ok2 := toMinutes(end)
	if !ok1 || !ok2 {
		return nil
	}

	var slots []string
	for cur := startMin; cur <= endMin; cur += intervalMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}
	return slots
}

func toMinutes(hm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
