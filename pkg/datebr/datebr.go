// Package datebr normaliza datas de calendário recebidas em formatos heterogêneos
// (DD/MM/YYYY, ISO date, ISO datetime, RFC1123) para meia-noite local e as formata
// de volta no padrão brasileiro DD/MM/YYYY.
//
// Datas aqui não têm semântica de fuso: "2025-03-04" é o dia 4 de março em qualquer
// lugar. Por isso strings ISO nunca são interpretadas como UTC; só a parte de data é usada.
package datebr

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// LayoutBR formato de exibição.
	LayoutBR = "02/01/2006"
	// LayoutAPI formato aceito pela API externa.
	LayoutAPI = "2006-01-02"
)

var (
	locMu sync.RWMutex
	loc   = time.Local

	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	brDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

	// fallbackLayouts cobre o que a API costuma emitir fora dos três formatos principais
	// (Flask serializa date como RFC1123).
	fallbackLayouts = []string{
		time.RFC1123,
		time.RFC1123Z,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"02-01-2006",
		"2006/01/02",
	}
)

// SetLocation define o fuso usado para construir a meia-noite local. nil restaura time.Local.
func SetLocation(l *time.Location) {
	locMu.Lock()
	defer locMu.Unlock()
	if l == nil {
		l = time.Local
	}
	loc = l
}

// Location devolve o fuso atual.
func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	return loc
}

// Parse converte v em meia-noite local. Aceita nil, time.Time, *time.Time e string.
// O segundo retorno é false para entradas vazias ou irreconhecíveis; nunca entra em pânico.
func Parse(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return midnight(d.Year(), d.Month(), d.Day())
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return Parse(*d)
	case string:
		return parseString(d)
	case *string:
		if d == nil {
			return time.Time{}, false
		}
		return parseString(*d)
	default:
		return time.Time{}, false
	}
}

// Format devolve v como DD/MM/YYYY, ou "" se v não for uma data válida.
func Format(v any) string {
	t, ok := Parse(v)
	if !ok {
		return ""
	}
	return t.Format(LayoutBR)
}

// ToAPI formata t como YYYY-MM-DD usando seus campos de calendário.
func ToAPI(t time.Time) string {
	return t.Format(LayoutAPI)
}

// Today devolve a meia-noite local do dia de now.
func Today(now time.Time) time.Time {
	n := now.In(Location())
	t, _ := midnight(n.Year(), n.Month(), n.Day())
	return t
}

func parseString(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := brDateRe.FindStringSubmatch(s); m != nil {
		return fromParts(m[3], m[2], m[1])
	}

	// ISO com hora: só a parte de data, para não deslocar o dia em fusos negativos.
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		if m := isoDateRe.FindStringSubmatch(s[:idx]); m != nil {
			return fromParts(m[1], m[2], m[3])
		}
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return fromParts(m[1], m[2], m[3])
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t.Year(), t.Month(), t.Day())
		}
	}
	return time.Time{}, false
}

func fromParts(year, month, day string) (time.Time, bool) {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}
	return midnight(y, time.Month(m), d)
}

// midnight rejeita datas que o time.Date normalizaria (31/02 → 03/03).
func midnight(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, Location())
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
