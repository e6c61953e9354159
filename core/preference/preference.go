package preference

import (
	"os"
	"path/filepath"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/trezcool/synapse/core"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	DefaultTheme = ThemeDark
	themeKey     = "theme"
)

var (
	ErrInvalidTheme = core.NewDomainError("invalid theme")

	themeTag  = "theme"
	themeText = "theme must be either dark or light"
)

func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// InitValidators registers the `theme` tag on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(themeTag, func(fl validator.FieldLevel) bool {
		return Theme(fl.Field().String()).IsValid()
	})
	core.RegisterCustomTranslation(validate, translator, themeTag, themeText)
}

// Store persists local preferences in a YAML file.
type Store struct {
	path string
	v    *viper.Viper
	mu   sync.Mutex
}

// NewStore reads the preferences file at path, if it exists.
func NewStore(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(themeKey, string(DefaultTheme))

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading preferences")
		}
	}
	return &Store{path: path, v: v}, nil
}

// Theme returns the saved theme; unknown values read as the default.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme()
}

func (s *Store) theme() Theme {
	if t := Theme(s.v.GetString(themeKey)); t.IsValid() {
		return t
	}
	return DefaultTheme
}

func (s *Store) SetTheme(t Theme) error {
	if !t.IsValid() {
		return ErrInvalidTheme
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(t)
}

// ToggleTheme switches between dark & light and returns the new theme.
func (s *Store) ToggleTheme() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ThemeLight
	if s.theme() == ThemeLight {
		next = ThemeDark
	}
	if err := s.save(next); err != nil {
		return s.theme(), err
	}
	return next, nil
}

func (s *Store) save(t Theme) error {
	prev := s.v.GetString(themeKey)
	s.v.Set(themeKey, string(t))
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.v.Set(themeKey, prev)
		return errors.Wrap(err, "creating preferences dir")
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		s.v.Set(themeKey, prev)
		return errors.Wrap(err, "writing preferences")
	}
	return nil
}
