package questionnaire

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned by Validate when the questionnaire is incomplete.
var ErrInvalid = errors.New("invalid questionnaire")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire keys instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// weblink accepts full URLs as well as scheme-less "vk.com/id" style links
	err := v.RegisterValidation("weblink", func(fl validator.FieldLevel) bool {
		return isWebLink(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register weblink validation: %v", err))
	}
	return v
}

func isWebLink(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.Contains(u.Host, ".")
}

// Validate checks the questionnaire before it is sent. Submission itself
// never validates; callers decide whether to call this.
func (q Questionnaire) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), "Questionnaire.")
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", path, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
