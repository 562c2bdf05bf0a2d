package xvalidate

import (
	"errors"
	"reflect"

	enLocal "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTrans "github.com/go-playground/validator/v10/translations/en"
	"gomod.pri/subcrack/alphabet"
)

// Validate checks v against its `validate` tags and returns the first
// failure translated to English, labelled by the field's `label` tag.
func Validate(v any) error {
	err := validate.Struct(v)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, err := range verrs {
			return errors.New(err.Translate(trans))
		}
	}
	return nil
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
	initCustomValidator(validate)

	local := enLocal.New()
	trans, _ = ut.New(local).GetTranslator(local.Locale())
	_ = enTrans.RegisterDefaultTranslations(validate, trans)
	registerCustomTranslations(validate, trans)
}

func initCustomValidator(validate *validator.Validate) {
	// substitution key: a permutation of the 26 lowercase letters
	_ = validate.RegisterValidation("subkey", func(fl validator.FieldLevel) bool {
		_, err := alphabet.NewKey(fl.Field().String())
		return err == nil
	})
}

func registerCustomTranslations(validate *validator.Validate, trans ut.Translator) {
	_ = validate.RegisterTranslation("subkey", trans,
		func(ut ut.Translator) error {
			return ut.Add("subkey", "{0} must be a permutation of the 26 lowercase letters", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("subkey", fe.Field())
			return t
		},
	)
}
