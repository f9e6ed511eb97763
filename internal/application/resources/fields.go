package resources

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// ErrUnexpectedShape el cuerpo es JSON válido pero no tiene la forma esperada.
var ErrUnexpectedShape = errors.New("forma de respuesta inesperada")

// fields objeto JSON crudo. Los accesores reciben alias en orden de preferencia y toman el
// primero con valor "verdadero": ausente, null, "", 0 y false se saltan.
type fields map[string]json.RawMessage

// document separa un cuerpo en objeto o arreglo. Cualquier otra cosa es error.
func document(body []byte) (obj fields, arr []json.RawMessage, err error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil, fmt.Errorf("%w: cuerpo vacío", ErrUnexpectedShape)
	}
	switch body[0] {
	case '{':
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, nil, err
		}
		return obj, nil, nil
	case '[':
		if err := json.Unmarshal(body, &arr); err != nil {
			return nil, nil, err
		}
		return nil, arr, nil
	default:
		if !json.Valid(body) {
			return nil, nil, fmt.Errorf("%w: JSON inválido", ErrUnexpectedShape)
		}
		return nil, nil, fmt.Errorf("%w: se esperaba objeto o arreglo", ErrUnexpectedShape)
	}
}

// singleObject acepta un objeto o un arreglo de un único objeto.
func singleObject(body []byte) (fields, error) {
	obj, arr, err := document(body)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		return obj, nil
	}
	if len(arr) == 1 {
		if f, ok := asFields(arr[0]); ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: se esperaba un objeto", ErrUnexpectedShape)
}

func asFields(raw json.RawMessage) (fields, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, false
	}
	return f, true
}

func (f fields) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := f[k]; ok {
			return true
		}
	}
	return false
}

func (f fields) raw(keys ...string) json.RawMessage {
	for _, k := range keys {
		v, ok := f[k]
		if !ok || falsy(v) {
			continue
		}
		return v
	}
	return nil
}

func (f fields) str(keys ...string) string {
	v := f.raw(keys...)
	if v == nil {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return string(bytes.TrimSpace(v))
}

func (f fields) dec(keys ...string) decimal.Decimal {
	return toDecimal(f.raw(keys...))
}

func (f fields) count(keys ...string) entity.Count {
	d := f.dec(keys...)
	return entity.Count(d.Round(0).IntPart())
}

func (f fields) obj(keys ...string) fields {
	v := f.raw(keys...)
	if v == nil {
		return fields{}
	}
	if o, ok := asFields(v); ok {
		return o
	}
	return fields{}
}

func (f fields) list(keys ...string) []fields {
	v := bytes.TrimSpace(f.raw(keys...))
	if len(v) == 0 || v[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	return objects(items)
}

// objects descarta los elementos que no son objetos.
func objects(items []json.RawMessage) []fields {
	out := make([]fields, 0, len(items))
	for _, it := range items {
		if o, ok := asFields(it); ok {
			out = append(out, o)
		}
	}
	return out
}

func falsy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	switch string(v) {
	case "", "null", "false", `""`:
		return true
	}
	if v[0] == '-' || (v[0] >= '0' && v[0] <= '9') {
		n, err := strconv.ParseFloat(string(v), 64)
		return err == nil && n == 0
	}
	return false
}

// toDecimal acepta números y strings numéricos con adornos ("Rs 1,200"). Lo no numérico vale 0.
func toDecimal(v json.RawMessage) decimal.Decimal {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || string(v) == "null" {
		return decimal.Zero
	}
	s := string(v)
	if v[0] == '"' {
		if err := json.Unmarshal(v, &s); err != nil {
			return decimal.Zero
		}
		s = strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
