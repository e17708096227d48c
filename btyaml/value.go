// Package btyaml implements the YAML wire encoding for the selection-tree
// and behavior-tree definitions: tagged unions are encoded with an
// explicit discriminator field, addresses as {id, index}, BigInt as a
// decimal string, BigRational as {num, denom} decimal strings, Weekday as
// its ISO-8601 3-letter name, and regex patterns as plain strings.
package btyaml

import (
	"fmt"
	"math/big"

	"github.com/joeycumines/content-bt/value"
)

// wireHolder is the discriminated-union wire form of a value.Holder.
type wireHolder struct {
	Kind     string       `yaml:"kind"`
	Bool     *bool        `yaml:"bool,omitempty"`
	Int      string       `yaml:"int,omitempty"`
	Num      string       `yaml:"num,omitempty"`
	Denom    string       `yaml:"denom,omitempty"`
	Str      *string      `yaml:"str,omitempty"`
	Weekday  string       `yaml:"weekday,omitempty"`
	Date     string       `yaml:"date,omitempty"`
	Time     string       `yaml:"time,omitempty"`
	DateTime string       `yaml:"date_time,omitempty"`
	Zoned    string       `yaml:"zoned,omitempty"`
	List     []wireHolder `yaml:"list,omitempty"`
}

// UnsupportedKindError reports an unrecognized wire discriminator.
type UnsupportedKindError struct{ Kind string }

func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf(`btyaml: unsupported value kind %q`, e.Kind)
}

func encodeHolder(h value.Holder) (wireHolder, error) {
	switch v := h.(type) {
	case value.Boolean:
		b := bool(v)
		return wireHolder{Kind: "boolean", Bool: &b}, nil
	case value.Integer:
		return wireHolder{Kind: "integer", Int: v.V.String()}, nil
	case value.Decimal:
		return wireHolder{Kind: "decimal", Num: v.V.Num().String(), Denom: v.V.Denom().String()}, nil
	case value.String:
		s := string(v)
		return wireHolder{Kind: "string", Str: &s}, nil
	case value.DayOfWeek:
		return wireHolder{Kind: "day_of_week", Weekday: v.String()}, nil
	case value.LocalDate:
		return wireHolder{Kind: "local_date", Date: v.String()}, nil
	case value.LocalTime:
		return wireHolder{Kind: "local_time", Time: v.String()}, nil
	case value.LocalDateTime:
		return wireHolder{Kind: "local_date_time", DateTime: v.String()}, nil
	case value.ZonedDateTime:
		return wireHolder{Kind: "zoned_date_time", Zoned: v.String()}, nil
	case value.List:
		items := make([]wireHolder, len(v))
		for i, elem := range v {
			w, err := encodeHolder(elem)
			if err != nil {
				return wireHolder{}, err
			}
			items[i] = w
		}
		return wireHolder{Kind: "list", List: items}, nil
	default:
		return wireHolder{}, fmt.Errorf(`btyaml: unsupported Holder type %T`, h)
	}
}

func decodeHolder(w wireHolder) (value.Holder, error) {
	switch w.Kind {
	case "boolean":
		if w.Bool == nil {
			return nil, fmt.Errorf(`btyaml: boolean value missing "bool" field`)
		}
		return value.Boolean(*w.Bool), nil
	case "integer":
		n, ok := new(big.Int).SetString(w.Int, 10)
		if !ok {
			return nil, fmt.Errorf(`btyaml: invalid integer literal %q`, w.Int)
		}
		return value.NewInteger(n), nil
	case "decimal":
		num, ok := new(big.Int).SetString(w.Num, 10)
		if !ok {
			return nil, fmt.Errorf(`btyaml: invalid decimal numerator %q`, w.Num)
		}
		denom, ok := new(big.Int).SetString(w.Denom, 10)
		if !ok {
			return nil, fmt.Errorf(`btyaml: invalid decimal denominator %q`, w.Denom)
		}
		return value.NewDecimal(new(big.Rat).SetFrac(num, denom)), nil
	case "string":
		if w.Str == nil {
			return nil, fmt.Errorf(`btyaml: string value missing "str" field`)
		}
		return value.String(*w.Str), nil
	case "day_of_week":
		wd, err := value.ParseISOWeekday(w.Weekday)
		if err != nil {
			return nil, err
		}
		return value.NewDayOfWeek(wd), nil
	case "local_date":
		return parseLocalDate(w.Date)
	case "local_time":
		return parseLocalTime(w.Time)
	case "local_date_time":
		return parseLocalDateTime(w.DateTime)
	case "zoned_date_time":
		return parseZonedDateTime(w.Zoned)
	case "list":
		items := make(value.List, len(w.List))
		for i, elem := range w.List {
			h, err := decodeHolder(elem)
			if err != nil {
				return nil, err
			}
			items[i] = h
		}
		return items, nil
	default:
		return nil, UnsupportedKindError{Kind: w.Kind}
	}
}
