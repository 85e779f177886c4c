package sim

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/sim/internal/evaluator"
)

var objectType = reflect.TypeOf((*evaluator.Object)(nil)).Elem()

// Marshaller handles conversion between Go and sim values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a sim Object. Integers of every width,
// strings and booleans (as 1 or 0) are supported; nil becomes unit.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Object, error) {
	if val == nil {
		return evaluator.UNIT, nil
	}

	// Check if already an Object
	if obj, ok := val.(evaluator.Object); ok {
		return obj, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &evaluator.Integer{Value: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("value %d does not fit in a 64-bit integer", u)
		}
		return &evaluator.Integer{Value: int64(u)}, nil
	case reflect.Bool:
		if v.Bool() {
			return &evaluator.Integer{Value: 1}, nil
		}
		return &evaluator.Integer{Value: 0}, nil
	case reflect.String:
		return &evaluator.String{Value: v.String()}, nil
	}
	return nil, fmt.Errorf("unsupported Go type %T", val)
}

// FromValue converts a sim Object to a Go value.
// targetType is optional; if provided, tries to convert to that type.
func (m *Marshaller) FromValue(obj evaluator.Object, targetType reflect.Type) (interface{}, error) {
	if obj == nil {
		return nil, nil
	}

	// If target type is evaluator.Object, return as is
	if targetType == objectType {
		return obj, nil
	}

	switch o := obj.(type) {
	case *evaluator.Integer:
		if targetType == nil || targetType.Kind() == reflect.Interface {
			return o.Value, nil
		}
		return convertInteger(o.Value, targetType)
	case *evaluator.String:
		if targetType == nil || targetType.Kind() == reflect.Interface {
			return o.Value, nil
		}
		if targetType.Kind() != reflect.String {
			return nil, fmt.Errorf("cannot convert string to %s", targetType)
		}
		return reflect.ValueOf(o.Value).Convert(targetType).Interface(), nil
	case *evaluator.Unit:
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported type for conversion: %s", obj.Type())
}

func convertInteger(n int64, targetType reflect.Type) (interface{}, error) {
	v := reflect.ValueOf(n)
	switch targetType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if reflect.Zero(targetType).OverflowInt(n) {
			return nil, fmt.Errorf("%d overflows %s", n, targetType)
		}
		return v.Convert(targetType).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || reflect.Zero(targetType).OverflowUint(uint64(n)) {
			return nil, fmt.Errorf("%d overflows %s", n, targetType)
		}
		return v.Convert(targetType).Interface(), nil
	case reflect.Float32, reflect.Float64:
		return v.Convert(targetType).Interface(), nil
	case reflect.Bool:
		return reflect.ValueOf(n != 0).Convert(targetType).Interface(), nil
	}
	return nil, fmt.Errorf("cannot convert integer to %s", targetType)
}
