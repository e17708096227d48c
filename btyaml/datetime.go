package btyaml

import (
	"fmt"
	"time"

	"github.com/joeycumines/content-bt/value"
)

// These layouts mirror value package's own (unexported) formatting
// layouts; kept in sync deliberately rather than exported from value,
// since only the wire codec needs to parse rather than just format.
const (
	localDateLayout     = "2006-01-02"
	localTimeLayout     = "15:04:05"
	localDateTimeLayout = "2006-01-02T15:04:05"
)

func parseLocalDate(s string) (value.Holder, error) {
	t, err := time.Parse(localDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf(`btyaml: invalid local_date %q: %w`, s, err)
	}
	return value.LocalDate{V: t}, nil
}

func parseLocalTime(s string) (value.Holder, error) {
	t, err := time.Parse(localTimeLayout, s)
	if err != nil {
		return nil, fmt.Errorf(`btyaml: invalid local_time %q: %w`, s, err)
	}
	return value.LocalTime{V: t}, nil
}

func parseLocalDateTime(s string) (value.Holder, error) {
	t, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return nil, fmt.Errorf(`btyaml: invalid local_date_time %q: %w`, s, err)
	}
	return value.LocalDateTime{V: t}, nil
}

func parseZonedDateTime(s string) (value.Holder, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf(`btyaml: invalid zoned_date_time %q: %w`, s, err)
	}
	return value.ZonedDateTime{V: t}, nil
}
