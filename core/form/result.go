package form

import (
	"encoding/json"
	"sort"

	"github.com/geekplay/foro/core"
)

// Status tells whether a field was validated and, if so, whether it passed.
type Status uint8

const (
	Unchecked Status = iota
	Passed
	Failed
)

// Result is the outcome of validating a single field value.
// The zero Result is Unchecked.
type Result struct {
	status  Status
	message string
}

func Valid() Result {
	return Result{status: Passed}
}

func Invalid(msg string) Result {
	return Result{status: Failed, message: msg}
}

func (r Result) Status() Status { return r.status }

func (r Result) OK() bool { return r.status == Passed }

func (r Result) Failed() bool { return r.status == Failed }

// Message returns the error message of a Failed result, "" otherwise.
func (r Result) Message() string { return r.message }

// Errors maps form field names to their validation Result.
// Fields that were not validated are absent.
type Errors map[string]Result

// Valid reports whether no field Failed.
func (errs Errors) Valid() bool {
	for _, r := range errs {
		if r.Failed() {
			return false
		}
	}
	return true
}

// Messages returns the messages of the failed fields.
func (errs Errors) Messages() map[string]string {
	msgs := make(map[string]string, len(errs))
	for fld, r := range errs {
		if r.Failed() {
			msgs[fld] = r.message
		}
	}
	return msgs
}

func (errs Errors) MarshalJSON() ([]byte, error) {
	return json.Marshal(errs.Messages())
}

// Err returns a *core.ValidationError listing the failed fields (sorted by name), or nil.
func (errs Errors) Err() error {
	if errs.Valid() {
		return nil
	}
	flds := make([]string, 0, len(errs))
	for fld, r := range errs {
		if r.Failed() {
			flds = append(flds, fld)
		}
	}
	sort.Strings(flds)

	fldErrs := make([]core.FieldError, 0, len(flds))
	for _, fld := range flds {
		fldErrs = append(fldErrs, core.FieldError{Field: fld, Error: errs[fld].message})
	}
	return core.NewValidationError(nil, fldErrs...)
}
