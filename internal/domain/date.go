package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout é o formato de calendário usado em todo o documento
	DateLayout = "2006-01-02"
	// MonthLayout é o formato de competência (ano-mês) das faturas
	MonthLayout = "2006-01"
)

// Date representa uma data de calendário (sem hora). Internamente é um
// time.Time truncado para o dia em UTC; na borda JSON é sempre a string
// ISO `2006-01-02`.
type Date struct {
	t time.Time
}

// NewDate cria uma Date a partir de ano, mês e dia
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca um time.Time para a data de calendário correspondente
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today retorna a data de calendário atual
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta uma string ISO `2006-01-02`
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}

	return Date{t: t}, nil
}

// IsZero indica se a data não foi informada
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// AddDays retorna a data deslocada em n dias (n pode ser negativo)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time expõe o time.Time subjacente
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Month representa uma competência (ano-mês) no formato `2006-01`
type Month struct {
	t time.Time
}

// MonthOf trunca um time.Time para a competência correspondente
func MonthOf(t time.Time) Month {
	return Month{t: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// ParseMonth interpreta uma string `2006-01`
func ParseMonth(s string) (Month, error) {
	if s == "" {
		return Month{}, nil
	}

	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("competência inválida %q: %w", s, err)
	}

	return Month{t: t}, nil
}

func (m Month) IsZero() bool {
	return m.t.IsZero()
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.t.Format(MonthLayout)
}

func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" {
		*m = Month{}
		return nil
	}

	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// unquote remove as aspas de um literal JSON de string; `null` vira vazio
func unquote(data []byte) string {
	s := string(data)
	if s == "null" {
		return ""
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
