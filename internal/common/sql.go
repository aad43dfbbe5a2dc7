package common

import (
	"errors"
	"reflect"
)

// GetFieldValues returns the struct field values in declaration order, used as
// positional query args for the *In structs.
func GetFieldValues(i interface{}) ([]interface{}, error) {
	entities := reflect.ValueOf(i)
	if entities.Kind() != reflect.Struct {
		return nil, errors.New("invalid entity for get field values")
	}

	values := make([]interface{}, entities.NumField())
	for i := 0; i < entities.NumField(); i++ {
		v := entities.Field(i).Interface()
		values[i] = v
	}
	return values, nil
}

// NullString maps "" to nil so optional columns are stored as NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
