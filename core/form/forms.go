package form

import (
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/geekplay/foro/core"
)

// validation tags
const (
	requiredTag         = "gprequired"
	emailTag            = "gpemail"
	passwordTag         = "gppassword"
	nameTag             = "gpname"
	messageTag          = "gpmessage"
	titleTag            = "gptitle"
	contentTag          = "gpcontent"
	passwordMismatchTag = "gpmatch"
)

var fieldRules = []struct {
	tag   string
	check func(string) Result
	text  string
}{
	{tag: requiredTag, check: Required, text: requiredText},
	{tag: emailTag, check: Email, text: emailText},
	{tag: passwordTag, check: Password, text: passwordText},
	{tag: nameTag, check: Name, text: nameText},
	{tag: messageTag, check: Message, text: messageText},
	{tag: titleTag, check: Title, text: titleText},
	{tag: contentTag, check: Content, text: contentText},
}

type (
	LoginForm struct {
		Email    string `json:"email" validate:"gpemail"`
		Password string `json:"password" validate:"gppassword"`
	}

	ContactForm struct {
		Name    string `json:"name" validate:"gpname"`
		Email   string `json:"email" validate:"gpemail"`
		Message string `json:"message" validate:"gpmessage"`
	}

	RegistrationForm struct {
		Name            string `json:"name" validate:"gpname"`
		Email           string `json:"email" validate:"gpemail"`
		Password        string `json:"password" validate:"gppassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	// ProfileForm holds the editable profile fields. Changing the password is optional:
	// the password fields are only validated when NuevaPassword is set.
	ProfileForm struct {
		Nombre            string `json:"nombre" validate:"gpname"`
		Correo            string `json:"correo" validate:"gpemail"`
		NuevaPassword     string `json:"nuevaPassword,omitempty" validate:"omitempty,gppassword"`
		ConfirmarPassword string `json:"confirmarPassword,omitempty"`
	}

	ForumPostForm struct {
		Titulo    string `json:"titulo" validate:"gptitle"`
		Contenido string `json:"contenido" validate:"gpcontent"`
	}
)

// Validator runs the composite form validations.
// It is safe for concurrent use.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() *Validator {
	validate := validator.New()
	translator := core.NewTranslator()
	core.UseJSONTagNames(validate)

	for _, rule := range fieldRules {
		check := rule.check
		_ = validate.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String()).OK()
		})
		core.RegisterCustomTranslation(validate, translator, rule.tag, rule.text)
	}

	validate.RegisterStructValidation(passwordConfirmation, RegistrationForm{}, ProfileForm{})
	core.RegisterCustomTranslation(validate, translator, passwordMismatchTag, passwordMismatchText)

	return &Validator{validate: validate, translator: translator}
}

// passwordConfirmation reports a mismatch between a password and its confirmation.
func passwordConfirmation(sl validator.StructLevel) {
	switch f := sl.Current().Interface().(type) {
	case RegistrationForm:
		if f.Password != f.ConfirmPassword {
			sl.ReportError(f.ConfirmPassword, "confirmPassword", "ConfirmPassword", passwordMismatchTag, "")
		}
	case ProfileForm:
		if f.NuevaPassword != "" && f.NuevaPassword != f.ConfirmarPassword {
			sl.ReportError(f.ConfirmarPassword, "confirmarPassword", "ConfirmarPassword", passwordMismatchTag, "")
		}
	}
}

// check validates values and returns a Result for each of fields.
func (v *Validator) check(values interface{}, fields ...string) Errors {
	errs := make(Errors, len(fields))
	for _, fld := range fields {
		errs[fld] = Valid()
	}

	// values is always a form struct, so the only possible error is validator.ValidationErrors
	vErrs, _ := v.validate.Struct(values).(validator.ValidationErrors)
	for _, fe := range vErrs {
		errs[fe.Field()] = Invalid(fe.Translate(v.translator))
	}
	return errs
}

func (v *Validator) ValidateLoginForm(values LoginForm) Errors {
	return v.check(values, "email", "password")
}

func (v *Validator) ValidateContactForm(values ContactForm) Errors {
	return v.check(values, "name", "email", "message")
}

func (v *Validator) ValidateRegistrationForm(values RegistrationForm) Errors {
	return v.check(values, "name", "email", "password", "confirmPassword")
}

func (v *Validator) ValidateProfileForm(values ProfileForm) Errors {
	fields := []string{"nombre", "correo"}
	if values.NuevaPassword != "" {
		fields = append(fields, "nuevaPassword", "confirmarPassword")
	}
	return v.check(values, fields...)
}

func (v *Validator) ValidateForumPost(values ForumPostForm) Errors {
	return v.check(values, "titulo", "contenido")
}

var (
	std     *Validator
	stdOnce sync.Once
)

// Default returns the shared Validator used by the package level helpers.
func Default() *Validator {
	stdOnce.Do(func() { std = NewValidator() })
	return std
}

func ValidateLoginForm(values LoginForm) Errors {
	return Default().ValidateLoginForm(values)
}

func ValidateContactForm(values ContactForm) Errors {
	return Default().ValidateContactForm(values)
}

func ValidateRegistrationForm(values RegistrationForm) Errors {
	return Default().ValidateRegistrationForm(values)
}

func ValidateProfileForm(values ProfileForm) Errors {
	return Default().ValidateProfileForm(values)
}

func ValidateForumPost(values ForumPostForm) Errors {
	return Default().ValidateForumPost(values)
}
