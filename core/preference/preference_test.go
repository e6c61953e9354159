package preference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/synapse/core"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yaml")

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme())

	assert.ErrorIs(t, s.SetTheme("pink"), ErrInvalidTheme)

	require.NoError(t, s.SetTheme(ThemeLight))
	assert.Equal(t, ThemeLight, s.Theme())

	// persisted
	again, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, again.Theme())

	next, err := again.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, next)
	next, err = again.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, next)
}

func TestStore_UnknownValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0o600))

	_, err := NewStore(path)
	assert.Error(t, err)
}

func TestInitValidators(t *testing.T) {
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	InitValidators(validate, translator)

	type req struct {
		Theme string `json:"theme" validate:"required,theme"`
	}
	assert.NoError(t, validate.Struct(req{Theme: "light"}))

	err := validate.Struct(req{Theme: "neon"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{"theme": "theme must be either dark or light"}, core.TranslateErrors(verrs, translator))
}
