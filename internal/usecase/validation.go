package usecase

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/store"
)

var latinName = regexp.MustCompile(`^[A-Za-z\s]+$`)

var validationMessages = map[string]string{
	"required": "هذا الحقل مطلوب",
	"latin":    "الاسم واللقب يجب أن يكونا بالأحرف اللاتينية فقط",
	"eqfield":  "كلمة المرور غير متطابقة",
	"max":      "القيمة أطول من المسموح",
	"email":    "البريد الإلكتروني غير صالح",
	"wilaya":   "ولاية غير معروفة",
	"gt":       "القيمة يجب أن تكون موجبة",
	"gte":      "القيمة لا يمكن أن تكون سالبة",
	"min":      "القيمة أقصر من المسموح",
	"url":      "رابط غير صالح",
}

// NewValidator builds the shared validator with the storefront's custom tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("latin", func(fl validator.FieldLevel) bool {
		return latinName.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("wilaya", func(fl validator.FieldLevel) bool {
		return slices.Contains(store.Wilayas, fl.Field().String())
	})
	return v
}

// validateStruct converts validator failures into a domain ValidationError.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &domainErrors.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := validationMessages[fe.Tag()]
		if !ok {
			msg = "قيمة غير صالحة"
		}
		if _, seen := out.Fields[fe.Field()]; !seen {
			out.Fields[fe.Field()] = msg
		}
	}
	return out
}

// trimFields trims every exported string field of the struct ptr points to.
func trimFields(ptr any) {
	v := reflect.ValueOf(ptr).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
