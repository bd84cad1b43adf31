package domain

import "fmt"

// Kode error untuk seluruh workflow engine. Handler memetakan kode ini
// ke HTTP status, engine tidak pernah menyentuh status HTTP langsung.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidState      = "INVALID_STATE"
	CodeConflict          = "CONFLICT"
	CodeDuplicate         = "DUPLICATE"
	CodeAlreadyCheckedIn  = "ALREADY_CHECKED_IN"
	CodeAlreadyCheckedOut = "ALREADY_CHECKED_OUT"
	CodeNotCheckedIn      = "NOT_CHECKED_IN"
	CodeEvidenceMissing   = "EVIDENCE_MISSING"
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
)

// FieldError menunjuk field yang gagal validasi, dipakai pada response
// {errors: [{path, msg}]}.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// Error adalah error bertipe milik engine. Setiap perintah yang ditolak
// membawa kode + pesan supaya caller bisa menampilkan alasan persis.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field)", e.Code, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(fields ...FieldError) *Error {
	return &Error{Code: CodeValidation, Message: "Validasi gagal", Fields: fields}
}

func NewInvalidStateError(msg string) *Error {
	return &Error{Code: CodeInvalidState, Message: msg}
}

func NewConflictError(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewDuplicateError(msg string) *Error {
	return &Error{Code: CodeDuplicate, Message: msg}
}

func NewAlreadyCheckedInError() *Error {
	return &Error{Code: CodeAlreadyCheckedIn, Message: "Anda sudah melakukan check-in hari ini"}
}

func NewAlreadyCheckedOutError() *Error {
	return &Error{Code: CodeAlreadyCheckedOut, Message: "Anda sudah melakukan check-out hari ini"}
}

func NewNotCheckedInError() *Error {
	return &Error{Code: CodeNotCheckedIn, Message: "Anda belum melakukan check-in hari ini"}
}

func NewEvidenceMissingError(msg string) *Error {
	return &Error{Code: CodeEvidenceMissing, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// CodeOf mengembalikan kode error engine, atau "" jika err bukan *Error.
func CodeOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}
