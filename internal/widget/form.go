package widget

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	FieldName  = "name"
	FieldEmail = "email"
)

const (
	MsgNameRequired  = "El nombre es requerido"
	MsgEmailRequired = "El email es requerido"
	MsgEmailInvalid  = "El email no es válido"
)

var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

type registration struct {
	Name  string `validate:"notblank"`
	Email string `validate:"notblank,looseemail"`
}

// RegisterForm holds the name and email fields of the registration form.
type RegisterForm struct {
	validate  *validator.Validate
	data      registration
	errors    FieldErrors
	submitted bool
	log       zerolog.Logger
}

func NewRegisterForm(log zerolog.Logger) *RegisterForm {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for a duplicate or empty tag, both fixed here
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})

	return &RegisterForm{
		validate: v,
		errors:   FieldErrors{},
		log:      log,
	}
}

// SetName updates the name and clears its pending error.
func (f *RegisterForm) SetName(name string) {
	f.data.Name = name
	delete(f.errors, FieldName)
}

// SetEmail updates the email and clears its pending error.
func (f *RegisterForm) SetEmail(email string) {
	f.data.Email = email
	delete(f.errors, FieldEmail)
}

func (f *RegisterForm) Name() string  { return f.data.Name }
func (f *RegisterForm) Email() string { return f.data.Email }

// CanSubmit reports whether both fields hold something other than whitespace.
func (f *RegisterForm) CanSubmit() bool {
	return strings.TrimSpace(f.data.Name) != "" && strings.TrimSpace(f.data.Email) != ""
}

// Submit validates both fields. On success it clears the fields and flags the
// form as submitted; otherwise Errors holds a message per failing field.
func (f *RegisterForm) Submit() bool {
	errs := f.check()
	f.errors = errs
	if len(errs) > 0 {
		f.log.Debug().Int("errors", len(errs)).Msg("register_form_rejected")
		return false
	}

	f.data = registration{}
	f.submitted = true
	f.log.Debug().Msg("register_form_submitted")
	return true
}

// Reset clears the fields, the errors and the success flag.
func (f *RegisterForm) Reset() {
	f.data = registration{}
	f.errors = FieldErrors{}
	f.submitted = false
}

func (f *RegisterForm) Submitted() bool {
	return f.submitted
}

// Errors returns a copy of the current field errors.
func (f *RegisterForm) Errors() FieldErrors {
	out := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *RegisterForm) check() FieldErrors {
	errs := FieldErrors{}

	err := f.validate.Struct(f.data)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.log.Error().Err(err).Msg("register_form_validate")
		return errs
	}

	for _, fe := range verrs {
		switch {
		case fe.StructField() == "Name":
			errs[FieldName] = MsgNameRequired
		case fe.StructField() == "Email" && fe.Tag() == "notblank":
			errs[FieldEmail] = MsgEmailRequired
		case fe.StructField() == "Email":
			errs[FieldEmail] = MsgEmailInvalid
		}
	}

	return errs
}
