package domain

import (
	"fmt"
	"time"
)

// The event happens at a single fixed instant; adjust here if the date moves.
const (
	eventTimezone = "Europe/Lisbon"
	eventYear     = 2026
	eventMonth    = time.February
	eventDay      = 21
	eventHour     = 13
)

var ptWeekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// EventTime returns the event's date/time in its fixed timezone.
func EventTime() time.Time {
	loc, err := time.LoadLocation(eventTimezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Date(eventYear, eventMonth, eventDay, eventHour, 0, 0, 0, loc)
}

// EventTimezone returns the IANA name of the event's timezone, exposed to the
// client-side countdown.
func EventTimezone() string { return eventTimezone }

// FormatEventDate renders the event date in long pt-PT form,
// e.g. "sábado, 21 de fevereiro de 2026".
func FormatEventDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		ptWeekdays[t.Weekday()], t.Day(), ptMonths[t.Month()-1], t.Year())
}

// FormatEventHour renders the event hour as HH:MM.
func FormatEventHour(t time.Time) string {
	return t.Format("15:04")
}

// DaysUntil returns the number of whole days from now until the event,
// clamped at zero once the event has passed.
func DaysUntil(event, now time.Time) int {
	diff := event.Sub(now)
	if diff < 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}
