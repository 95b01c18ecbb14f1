package client

import (
	"fmt"
	"net/url"
	"strconv"
)

// Params holds request parameters. Values are coerced to strings only when
// the request is encoded; see coerce for the accepted types.
type Params map[string]any

// Merge returns a new Params holding p overlaid with other. Keys in other win.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Strings coerces every value. Nil values are dropped.
func (p Params) Strings() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if v == nil {
			continue
		}
		out[k] = coerce(v)
	}
	return out
}

// Values coerces p into url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p.Strings() {
		values.Set(k, v)
	}
	return values
}

// Encode returns the query-escaped form of p with keys in sorted order.
func (p Params) Encode() string {
	return p.Values().Encode()
}

func (p Params) setTrue(key string, v bool) {
	if v {
		p[key] = true
	}
}

func (p Params) setNonEmpty(key, v string) {
	if v != "" {
		p[key] = v
	}
}

func coerce(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
