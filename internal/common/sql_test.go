package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFieldValues(t *testing.T) {
	type in struct {
		A string
		B int
		C *string
	}

	got, err := GetFieldValues(in{A: "a", B: 2})
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"a", 2, (*string)(nil)}, got)

	_, err = GetFieldValues(&in{})
	assert.Error(t, err)
}

func TestNullString(t *testing.T) {
	assert.Nil(t, NullString(""))
	if got := NullString("FIT-1"); assert.NotNil(t, got) {
		assert.Equal(t, "FIT-1", *got)
	}
}
