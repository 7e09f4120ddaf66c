package vendus

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Params holds request parameters for an endpoint call. Values may be
// scalars, slices or nested maps; nested values are encoded with bracket
// notation, e.g. {"items": [{"qty": 2}]} becomes items[0][qty]=2.
type Params map[string]any

// Values encodes the params into url.Values. Nil values are skipped and
// booleans are sent as 1/0.
func (p Params) Values() url.Values {
	values := url.Values{}

	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		encodeParam(values, key, p[key])
	}

	return values
}

// Clone returns a shallow copy of the params. A nil receiver yields an empty
// map.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for key, value := range p {
		clone[key] = value
	}

	return clone
}

func encodeParam(values url.Values, key string, value any) {
	switch typed := value.(type) {
	case nil:
		return
	case string:
		values.Add(key, typed)
	case bool:
		if typed {
			values.Add(key, "1")
		} else {
			values.Add(key, "0")
		}
	case int:
		values.Add(key, strconv.Itoa(typed))
	case int64:
		values.Add(key, strconv.FormatInt(typed, 10))
	case float64:
		values.Add(key, strconv.FormatFloat(typed, 'f', -1, 64))
	case decimal.Decimal:
		values.Add(key, typed.String())
	case json.Number:
		values.Add(key, typed.String())
	case Params:
		encodeMap(values, key, map[string]any(typed))
	case map[string]any:
		encodeMap(values, key, typed)
	case fmt.Stringer:
		values.Add(key, typed.String())
	default:
		encodeReflected(values, key, reflect.ValueOf(value))
	}
}

func encodeMap(values url.Values, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		encodeParam(values, prefix+"["+key+"]", m[key])
	}
}

func encodeReflected(values url.Values, key string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}

		encodeParam(values, key, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			encodeParam(values, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			values.Add(key, fmt.Sprint(rv.Interface()))

			return
		}

		m := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}

		encodeMap(values, key, m)
	case reflect.Int8, reflect.Int16, reflect.Int32:
		values.Add(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		values.Add(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		values.Add(key, strconv.FormatFloat(rv.Float(), 'f', -1, 32))
	default:
		values.Add(key, fmt.Sprint(rv.Interface()))
	}
}
