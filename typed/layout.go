package typed

import (
	"reflect"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/fixedblock"
)

func assertNoPointers[T any]() error {
	return typeNoPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func typeNoPointers(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return typeNoPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := typeNoPointers(t.Field(i).Type); err != nil {
				return cerrors.Wrapf(err, "field %s", t.Field(i).Name)
			}
		}
		return nil
	default:
		return cerrors.Wrapf(fixedblock.ErrPointerType, "%s is a %s", t.String(), t.Kind())
	}
}
