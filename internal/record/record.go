package record

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind discriminates the scalar types a field value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value is a tagged scalar: string, number, or null. Fixture feeds have no
// stable schema, so fields carry whichever scalar the source produced.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// String wraps s as a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps f as a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Null is the explicit absent value.
func Null() Value {
	return Value{kind: KindNull}
}

// Kind returns the value's scalar kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null scalar.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// CSV renders the value as a CSV cell. Null renders as an empty cell and
// integral numbers render without a decimal point.
func (v Value) CSV() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1e15 {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// Record is one normalized fixture entry: an open mapping from field name to
// scalar value. Records are built once and never mutated after extraction.
type Record map[string]Value

// Set assigns a field, overwriting any previous value.
func (r Record) Set(field string, v Value) {
	r[field] = v
}

// SetOnce assigns a field only if it is not already present. Row extraction
// uses this so the first matching cell wins.
func (r Record) SetOnce(field string, v Value) bool {
	if _, ok := r[field]; ok {
		return false
	}
	r[field] = v
	return true
}

// Len returns the number of populated fields.
func (r Record) Len() int {
	return len(r)
}

// FromAny converts a decoded JSON mapping into a Record. Strings, numbers,
// bools and nulls map onto tagged scalars; nested composites are kept as
// their JSON text so no information is dropped.
func FromAny(m map[string]any) Record {
	rec := make(Record, len(m))
	for k, v := range m {
		rec[k] = valueFromAny(v)
	}
	return rec
}

func valueFromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case string:
		return String(t)
	case float64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case bool:
		return String(strconv.FormatBool(t))
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return String(fmt.Sprintf("%v", t))
		}
		return String(string(data))
	}
}

// FieldUnion returns the sorted union of field names across records. The
// union becomes the rectangular CSV header; records missing a field are
// written with an empty cell.
func FieldUnion(records []Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for field := range rec {
			seen[field] = struct{}{}
		}
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
