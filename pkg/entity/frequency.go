package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type FrequencyKind int

const (
	FrequencyDaily FrequencyKind = iota
	FrequencyWeekly
	FrequencyCustom
)

// Frequency is the habit cadence. For Custom habits TimesPerWeek holds the
// weekly target (1..7); it is advisory only and never gates whether a day
// counts as completed.
type Frequency struct {
	Kind         FrequencyKind
	TimesPerWeek int
}

var ErrInvalidFrequency = errors.New("invalid frequency descriptor")

// ParseFrequency reads the stored descriptor: "Daily", "Weekly" or
// "Custom:N" with 1 <= N <= 7.
func ParseFrequency(s string) (Frequency, error) {
	switch {
	case s == "Daily":
		return Frequency{Kind: FrequencyDaily}, nil
	case s == "Weekly":
		return Frequency{Kind: FrequencyWeekly}, nil
	case strings.HasPrefix(s, "Custom:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "Custom:"))
		if err != nil || n < 1 || n > 7 {
			return Frequency{}, ErrInvalidFrequency
		}
		return Frequency{Kind: FrequencyCustom, TimesPerWeek: n}, nil
	}
	return Frequency{}, ErrInvalidFrequency
}

func (f Frequency) String() string {
	switch f.Kind {
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyCustom:
		return fmt.Sprintf("Custom:%d", f.TimesPerWeek)
	}
	return "Daily"
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidFrequency
	}
	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
