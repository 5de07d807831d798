package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report keys the way they are written in the config file, e.g. quiz.round_size
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := validate.RegisterTranslation("file", trans, func(ut ut.Translator) error {
		return ut.Add("file", "{0} must be an existing and readable file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("file", configKey(fe))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register file translation: %w", err)
	}

	validate.RegisterStructValidation(validateQuizConfig, QuizConfig{})
	if err := validate.RegisterTranslation("fits_round", trans, func(ut ut.Translator) error {
		return ut.Add("fits_round", "{0} must be at least round_size - 2 ({1})", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("fits_round", configKey(fe), fe.Param())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register fits_round translation: %w", err)
	}

	return validate, trans, nil
}

// validateQuizConfig rejects a minimum below round_size - 2, where a round
// could not be filled with distinct entries even after padding.
func validateQuizConfig(sl validator.StructLevel) {
	quiz := sl.Current().Interface().(QuizConfig)
	if floor := quiz.RoundSize - 2; quiz.MinimumEntries < floor {
		sl.ReportError(quiz.MinimumEntries, "minimum_entries", "MinimumEntries", "fits_round", strconv.Itoa(floor))
	}
}

func configKey(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Config.")
}

func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
