package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound reports that no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func newValidationError(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// validationFrom turns validator failures into a ValidationError. prefix
// namespaces the field names when validating list items.
func validationFrom(err error, prefix string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[prefix+fe.Field()] = fe.Tag()
	}
	return newValidationError("validation failed", fields)
}

// ConflictError is a business rule conflict such as scheduling a call twice.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a persistence failure. Conflict is set for uniqueness
// violations.
type StorageError struct {
	Op       string
	Err      error
	Conflict bool
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageError classifies err unless it already carries a domain meaning.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		se *StorageError
		ve *ValidationError
		ce *ConflictError
	)
	if errors.Is(err, ErrNotFound) || errors.As(err, &se) || errors.As(err, &ve) || errors.As(err, &ce) {
		return err
	}
	return &StorageError{Op: op, Err: err, Conflict: isUniqueViolation(err)}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return false
}
