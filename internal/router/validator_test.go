package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lakehire/internal/handler"
)

func validRegistration() handler.ConsultantRegisterRequest {
	return handler.ConsultantRegisterRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Handle:          "ada_lovelace",
		Email:           "ada@example.com",
		YearsExperience: "6-10",
		Specialization:  "data-engineering",
		Skills:          []string{"spark"},
		Bio:             strings.Repeat("Analytical engines and the people who program them. ", 2),
	}
}

func TestConsultantHandleValidation(t *testing.T) {
	v := NewCustomValidator()

	tests := []struct {
		name   string
		handle string
		valid  bool
	}{
		{"letters and digits", "ada1815", true},
		{"underscores allowed", "ada_lovelace", true},
		{"hyphens allowed", "ada-lovelace", true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 31), false},
		{"spaces rejected", "ada lovelace", false},
		{"punctuation rejected", "ada!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			req.Handle = tt.handle
			err := v.Validate(&req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConsultantBioMinimumLength(t *testing.T) {
	v := NewCustomValidator()

	req := validRegistration()
	req.Bio = "too short"
	assert.Error(t, v.Validate(&req))

	req.Bio = strings.Repeat("x", 50)
	assert.NoError(t, v.Validate(&req))
}
