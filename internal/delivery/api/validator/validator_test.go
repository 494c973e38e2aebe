package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	BirthDate   string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	UserName    string `json:"user_name" validate:"max=5"`
	Description string `json:"-" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{BirthDate: "2000-01-01", UserName: "alice", Description: "x"}))

	err := v.Validate(&sampleRequest{BirthDate: "01/01/2000", UserName: "alexander", Description: "x"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "birth_date must match the layout 2006-01-02")
		assert.Contains(t, err.Error(), "user_name must be at most 5 characters")
	}
}
