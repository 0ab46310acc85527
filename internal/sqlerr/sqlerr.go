// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes reported by PostgreSQL and converts them
// into user-friendly API errors (e.g., a "not null violation" on
// todo.description becomes a 400 with code TODO_REQUIRED).
package sqlerr

import "fmt"

// Code is the application-level category of a database error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
)

// Severity mirrors the severity PostgreSQL attaches to an error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityUnknown Severity = "UNKNOWN"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
var pgCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"22P02": InvalidTextRepresentation,
	"22001": StringDataRightTruncation,
	"22003": NumericValueOutOfRange,
}

// MapCode maps a SQLSTATE code to a Code. Codes HandleError has no
// client-facing branch for map to Other and become a 500.
func MapCode(sqlState string) Code {
	if code, ok := pgCodes[sqlState]; ok {
		return code
	}
	return Other
}

// MapSeverity maps the PostgreSQL severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice:
		return Severity(severity)
	default:
		return SeverityUnknown
	}
}

// Error is a normalized database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
