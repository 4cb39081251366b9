package types

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// LocalDate is a calendar date without time of day, encoded as "2006-01-02".
type LocalDate struct {
	time.Time
}

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	return LocalDate{t}, nil
}

func (d LocalDate) String() string {
	return d.Format(DateLayout)
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseLocalDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateFrom converts a nullable column value into a nullable LocalDate.
func DateFrom(d *datatypes.Date) *LocalDate {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &LocalDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ToDate is the inverse of DateFrom.
func ToDate(d *LocalDate) *datatypes.Date {
	if d == nil {
		return nil
	}
	v := datatypes.Date(d.Time)
	return &v
}
