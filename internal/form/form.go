// Package form validates comment form submissions before they reach the store.
package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names, shared by HTML forms and error maps.
const (
	FieldComment          = "comment"
	FieldNote             = "note"
	FieldAcceptConditions = "acceptConditions"
)

// Validation messages.
const (
	MsgCommentRequired    = "Comment is required"
	MsgNoteRequired       = "Rating is required"
	MsgNoteNotNumber      = "Rating must be a number"
	MsgNoteOutOfRange     = "Rating must be between 1 and 5"
	MsgConditionsRequired = "You must accept the conditions"
)

// Notes lists the allowed rating values.
var Notes = []int{1, 2, 3, 4, 5}

var validate = validator.New()

// Draft is unvalidated form input.
type Draft struct {
	Comment          string
	Note             string
	AcceptConditions bool
}

// Submission is a draft that passed validation.
type Submission struct {
	Comment string
	Note    int
}

// FieldErrors maps a field name to its message.
type FieldErrors map[string]string

// DraftFromForm builds a draft from posted form values.
// An unchecked checkbox is absent from the form and reads as false.
func DraftFromForm(v url.Values) Draft {
	accept, _ := strconv.ParseBool(v.Get(FieldAcceptConditions))
	if v.Get(FieldAcceptConditions) == "on" {
		accept = true
	}
	return Draft{
		Comment:          v.Get(FieldComment),
		Note:             v.Get(FieldNote),
		AcceptConditions: accept,
	}
}

// CheckComment reports why a comment is invalid, or "" if it is valid.
func CheckComment(s string) string {
	if validate.Var(strings.TrimSpace(s), "required") != nil {
		return MsgCommentRequired
	}
	return ""
}

// CheckNote reports why a rating is invalid, or "" if it is valid.
func CheckNote(s string) string {
	s = strings.TrimSpace(s)
	if validate.Var(s, "required") != nil {
		return MsgNoteRequired
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return MsgNoteNotNumber
	}
	if validate.Var(n, "min=1,max=5") != nil || validate.Var(n, "oneof=1 2 3 4 5") != nil {
		return MsgNoteOutOfRange
	}
	return ""
}

// CheckAcceptConditions reports why the conditions flag is invalid, or "".
func CheckAcceptConditions(accepted bool) string {
	if validate.Var(accepted, "required") != nil {
		return MsgConditionsRequired
	}
	return ""
}

// Validate checks every field of d. All fields are checked so each
// error can be shown at once; errs is nil when d is valid.
func Validate(d Draft) (Submission, FieldErrors) {
	errs := FieldErrors{}
	if msg := CheckComment(d.Comment); msg != "" {
		errs[FieldComment] = msg
	}
	if msg := CheckNote(d.Note); msg != "" {
		errs[FieldNote] = msg
	}
	if msg := CheckAcceptConditions(d.AcceptConditions); msg != "" {
		errs[FieldAcceptConditions] = msg
	}
	if len(errs) > 0 {
		return Submission{}, errs
	}

	note, _ := strconv.Atoi(strings.TrimSpace(d.Note))
	return Submission{
		Comment: strings.TrimSpace(d.Comment),
		Note:    note,
	}, nil
}
