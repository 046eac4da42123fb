package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genreForm struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

type accountForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

func TestStructGenreNameBounds(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(&genreForm{Name: "Drama"}))

	err := v.Struct(&genreForm{Name: "Noir"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at least 5 characters long")

	assert.NoError(t, v.Struct(&genreForm{Name: strings.Repeat("a", 50)}))

	err = v.Struct(&genreForm{Name: strings.Repeat("a", 51)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at most 50 characters long")

	err = v.Struct(&genreForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestStructFieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	err := v.Struct(&accountForm{Email: "not-an-email", Password: "Abcdef12"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestPasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"all three classes", "Abcdef12", true},
		{"too short", "Abc12", false},
		{"too long", "Abcdefghijklmnopqrstuvw123X", false},
		{"missing digits", "Abcdefgh", false},
		{"missing uppercase", "abcdef12", false},
		{"missing lowercase", "ABCDEF12", false},
		{"26 chars exactly", "Abcdefghijklmnopqrstuvwx12", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, passwordOK(tc.password))
		})
	}
}

func TestStructPasswordRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(&accountForm{Email: "a@b.io", Password: "Abcdef12"}))

	err := v.Struct(&accountForm{Email: "a@b.io", Password: "weak"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must be 8-26 characters")
}
