// Package form validates the values submitted through the GeekPlay forms.
//
// Field validators map a raw value to a Result; composite validators run them
// over a whole form and return the Errors of every field they checked.
package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	requiredText = "Este campo es obligatorio."
	emailText    = "Correo electrónico inválido."
	passwordText = "La contraseña debe tener al menos 6 caracteres."
	nameText     = "Nombre inválido."
	messageText  = "El mensaje debe tener al menos 10 caracteres."
	titleText    = "El título debe tener al menos 3 caracteres."
	contentText  = "El contenido debe tener al menos 10 caracteres."

	passwordMismatchText = "Las contraseñas no coinciden."

	pwdMinLen     = 6
	nameMinLen    = 2
	messageMinLen = 10
	titleMinLen   = 3
	contentMinLen = 10

	adminEmailSuffix = "@geekplay.cl"
)

// notSpaceOrAt matches anything but "@" and the characters JavaScript's \s class matches.
const notSpaceOrAt = `[^\s\v\p{Z}\x{FEFF}@]`

var emailRegex = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// length counts UTF-16 code units, the way browsers measure strings:
// characters outside the BMP count twice.
func length(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// isSpace reports whether r is whitespace to JavaScript (the \s class).
// U+0085 is not.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func minTrimmedLen(value string, min int, text string) Result {
	if length(trim(value)) < min {
		return Invalid(text)
	}
	return Valid()
}

// Required fails on empty and whitespace-only values.
func Required(value string) Result {
	if trim(value) == "" {
		return Invalid(requiredText)
	}
	return Valid()
}

// Length checks that value has at least min characters and, when max > 0, at most max characters.
// The value is not trimmed.
func Length(value string, min, max int) Result {
	n := length(value)
	if n < min {
		return Invalid(fmt.Sprintf("Debe tener al menos %d caracteres.", min))
	}
	if max > 0 && n > max {
		return Invalid(fmt.Sprintf("Debe tener máximo %d caracteres.", max))
	}
	return Valid()
}

func Email(email string) Result {
	if !emailRegex.MatchString(email) {
		return Invalid(emailText)
	}
	return Valid()
}

// Password checks the untrimmed length of pwd.
func Password(pwd string) Result {
	if length(pwd) < pwdMinLen {
		return Invalid(passwordText)
	}
	return Valid()
}

func Name(name string) Result {
	return minTrimmedLen(name, nameMinLen, nameText)
}

func Message(msg string) Result {
	return minTrimmedLen(msg, messageMinLen, messageText)
}

func Title(title string) Result {
	return minTrimmedLen(title, titleMinLen, titleText)
}

func Content(content string) Result {
	return minTrimmedLen(content, contentMinLen, contentText)
}

// IsAdminEmail reports whether email ends with "@geekplay.cl".
// It is a plain suffix check: "@geekplay.cl" alone is an admin email.
func IsAdminEmail(email string) bool {
	return strings.HasSuffix(email, adminEmailSuffix)
}
