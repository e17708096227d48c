// Package value implements the typed runtime value model shared by the
// behavior tree and selection tree engines: the polymorphic ValueHolder,
// the ValuesPayload it is carried in, and the relational comparisons
// required by conditions and dictionary lookups.
package value

import (
	"fmt"
	"math/big"
	"time"
)

// Kind discriminates the variants of a Holder. The set is closed; add a
// case here and to every exhaustive switch in this package when the
// variant set changes.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindDecimal
	KindString
	KindDayOfWeek
	KindLocalDate
	KindLocalTime
	KindLocalDateTime
	KindZonedDateTime
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindString:
		return "String"
	case KindDayOfWeek:
		return "DayOfWeek"
	case KindLocalDate:
		return "LocalDate"
	case KindLocalTime:
		return "LocalTime"
	case KindLocalDateTime:
		return "LocalDateTime"
	case KindZonedDateTime:
		return "ZonedDateTime"
	case KindList:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Holder is the tagged union over the runtime value variants. Equality and
// ordering are total within each variant and undefined across variants -
// use Compare, which reports IncompatibleValueTypes rather than coercing.
type Holder interface {
	Kind() Kind
	// equalTo and lessThan are only ever called by Compare after a Kind
	// match, so implementations may assume other is the same concrete type.
	equalTo(other Holder) bool
	lessThan(other Holder) bool
	fmt.Stringer
}

// Boolean is a ValueHolder variant wrapping bool.
type Boolean bool

func (b Boolean) Kind() Kind                { return KindBoolean }
func (b Boolean) String() string            { return fmt.Sprintf("%t", bool(b)) }
func (b Boolean) equalTo(other Holder) bool { return b == other.(Boolean) }
func (b Boolean) lessThan(other Holder) bool {
	o := other.(Boolean)
	return !bool(b) && bool(o)
}

// Integer is a ValueHolder variant wrapping an arbitrary-precision integer.
type Integer struct{ V *big.Int }

func NewInteger(v *big.Int) Integer { return Integer{V: v} }

func (i Integer) Kind() Kind                { return KindInteger }
func (i Integer) String() string            { return i.V.String() }
func (i Integer) equalTo(other Holder) bool { return i.V.Cmp(other.(Integer).V) == 0 }
func (i Integer) lessThan(other Holder) bool {
	return i.V.Cmp(other.(Integer).V) < 0
}

// Decimal is a ValueHolder variant wrapping an exact rational, avoiding the
// float drift a plain float64 would introduce into relational comparisons.
type Decimal struct{ V *big.Rat }

func NewDecimal(v *big.Rat) Decimal { return Decimal{V: v} }

func (d Decimal) Kind() Kind                { return KindDecimal }
func (d Decimal) String() string            { return d.V.RatString() }
func (d Decimal) equalTo(other Holder) bool { return d.V.Cmp(other.(Decimal).V) == 0 }
func (d Decimal) lessThan(other Holder) bool {
	return d.V.Cmp(other.(Decimal).V) < 0
}

// String is a ValueHolder variant wrapping a UTF-8 string.
type String string

func (s String) Kind() Kind                { return KindString }
func (s String) String() string            { return string(s) }
func (s String) equalTo(other Holder) bool { return s == other.(String) }
func (s String) lessThan(other Holder) bool {
	return s < other.(String)
}

// DayOfWeek is a ValueHolder variant wrapping time.Weekday.
type DayOfWeek struct{ V time.Weekday }

func NewDayOfWeek(w time.Weekday) DayOfWeek { return DayOfWeek{V: w} }

func (d DayOfWeek) Kind() Kind     { return KindDayOfWeek }
func (d DayOfWeek) String() string { return isoWeekdayName(d.V) }
func (d DayOfWeek) equalTo(other Holder) bool {
	return d.V == other.(DayOfWeek).V
}
func (d DayOfWeek) lessThan(other Holder) bool {
	return isoWeekdayOrdinal(d.V) < isoWeekdayOrdinal(other.(DayOfWeek).V)
}

// isoWeekdayOrdinal maps time.Weekday (Sunday==0) onto the ISO-8601 ordinal
// (Monday==1 .. Sunday==7) so DayOfWeek ordering matches the wire format's
// declared week start.
func isoWeekdayOrdinal(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

var isoWeekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func isoWeekdayName(w time.Weekday) string { return isoWeekdayNames[w] }

// ParseISOWeekday parses one of "Mon".."Sun".
func ParseISOWeekday(s string) (time.Weekday, error) {
	for i, name := range isoWeekdayNames {
		if name == s {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf(`value: unknown weekday name %q`, s)
}

const (
	localDateLayout     = "2006-01-02"
	localTimeLayout     = "15:04:05"
	localDateTimeLayout = "2006-01-02T15:04:05"
)

// LocalDate is a ValueHolder variant carrying a date with no time-of-day or
// zone component.
type LocalDate struct{ V time.Time }

func (d LocalDate) Kind() Kind     { return KindLocalDate }
func (d LocalDate) String() string { return d.V.Format(localDateLayout) }
func (d LocalDate) equalTo(other Holder) bool {
	return d.V.Equal(other.(LocalDate).V)
}
func (d LocalDate) lessThan(other Holder) bool {
	return d.V.Before(other.(LocalDate).V)
}

// LocalTime is a ValueHolder variant carrying a time-of-day with no date or
// zone component.
type LocalTime struct{ V time.Time }

func (t LocalTime) Kind() Kind     { return KindLocalTime }
func (t LocalTime) String() string { return t.V.Format(localTimeLayout) }
func (t LocalTime) equalTo(other Holder) bool {
	return t.V.Equal(other.(LocalTime).V)
}
func (t LocalTime) lessThan(other Holder) bool {
	return t.V.Before(other.(LocalTime).V)
}

// LocalDateTime is a ValueHolder variant carrying a naive (zoneless) date
// and time-of-day.
type LocalDateTime struct{ V time.Time }

func (t LocalDateTime) Kind() Kind     { return KindLocalDateTime }
func (t LocalDateTime) String() string { return t.V.Format(localDateTimeLayout) }
func (t LocalDateTime) equalTo(other Holder) bool {
	return t.V.Equal(other.(LocalDateTime).V)
}
func (t LocalDateTime) lessThan(other Holder) bool {
	return t.V.Before(other.(LocalDateTime).V)
}

// ZonedDateTime is a ValueHolder variant carrying a zone-aware instant.
type ZonedDateTime struct{ V time.Time }

func (t ZonedDateTime) Kind() Kind     { return KindZonedDateTime }
func (t ZonedDateTime) String() string { return t.V.Format(time.RFC3339) }
func (t ZonedDateTime) equalTo(other Holder) bool {
	return t.V.Equal(other.(ZonedDateTime).V)
}
func (t ZonedDateTime) lessThan(other Holder) bool {
	return t.V.Before(other.(ZonedDateTime).V)
}

// List is a ValueHolder variant wrapping an ordered sequence of Holder.
// Equality is element-wise; ordering is lexicographic (first differing
// element decides, shorter-is-less on a common prefix).
type List []Holder

func (l List) Kind() Kind { return KindList }
func (l List) String() string {
	s := "["
	for i, v := range l {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + "]"
}
func (l List) equalTo(other Holder) bool {
	o := other.(List)
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i].Kind() != o[i].Kind() || !l[i].equalTo(o[i]) {
			return false
		}
	}
	return true
}
func (l List) lessThan(other Holder) bool {
	o := other.(List)
	for i := 0; i < len(l) && i < len(o); i++ {
		if l[i].Kind() != o[i].Kind() {
			// incomparable elements never contribute an ordering; treat as equal at this position
			continue
		}
		if l[i].equalTo(o[i]) {
			continue
		}
		return l[i].lessThan(o[i])
	}
	return len(l) < len(o)
}

// contains reports whether l has an element equal to needle.
func (l List) contains(needle Holder) bool {
	for _, v := range l {
		if v.Kind() == needle.Kind() && v.equalTo(needle) {
			return true
		}
	}
	return false
}
