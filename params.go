package subject

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrParamType  = errors.New("unexpected parameter type")
	ErrParamCount = errors.New("not enough parameters")
)

// ParamAt asserts the type of the parameter at the given position.
// This is the simplest way for a dynamic handler to pull one value out of
// its parameter list.
func ParamAt[T any](params []Param, pos int) (T, error) {
	var val T
	if pos < 0 || pos >= len(params) {
		return val, fmt.Errorf("%w: no parameter at position %d of %d", ErrParamCount, pos, len(params))
	}
	val, ok := params[pos].(T)
	if !ok {
		return val, fmt.Errorf("%w: parameter %d is %T, not %T", ErrParamType, pos, params[pos], val)
	}
	return val, nil
}

// BindParams stores each parameter into the target pointer at the same
// position. Each target must be a non-nil pointer whose element type the
// parameter is assignable to. Trailing parameters without a target are
// ignored, which lets a handler bind only the leading parameters it cares
// about. All binding problems are reported, joined into one error.
func BindParams(params []Param, targets ...any) error {
	if len(params) < len(targets) {
		return fmt.Errorf("%w: %d targets for %d parameters", ErrParamCount, len(targets), len(params))
	}
	var errs []error
	for i, target := range targets {
		if err := bindParam(i, params[i], target); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func bindParam(pos int, param Param, target any) error {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() {
		return fmt.Errorf("target for parameter %d is not a usable pointer", pos)
	}
	elem := tv.Elem()
	if param == nil {
		elem.SetZero()
		return nil
	}
	pv := reflect.ValueOf(param)
	if !pv.Type().AssignableTo(elem.Type()) {
		return fmt.Errorf("%w: parameter %d is %T, not %s", ErrParamType, pos, param, elem.Type())
	}
	elem.Set(pv)
	return nil
}
