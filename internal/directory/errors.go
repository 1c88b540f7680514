package directory

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported by Directory operations. Callers match them with errors.Is.
var (
	ErrMissingArgument    = errors.New("missing argument")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDuplicateEmployee  = errors.New("duplicate employee")
)

// OpError describes a failed Directory operation.
// It records which operation failed and the arguments involved.
type OpError struct {
	Op         string // add, remove, move, rename, print
	Name       string // employee name (optional)
	Department string // department the failure refers to (optional)
	Err        error  // one of the sentinel errors
}

func newOpError(op, name, department string, err error) *OpError {
	return &OpError{Op: op, Name: name, Department: department, Err: err}
}

// Error implements the error interface for OpError.
func (e *OpError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	switch {
	case e.Name != "" && e.Department != "":
		sb.WriteString(fmt.Sprintf(": %q in %q", e.Name, e.Department))
	case e.Department != "":
		sb.WriteString(fmt.Sprintf(": %q", e.Department))
	case e.Name != "":
		sb.WriteString(fmt.Sprintf(": %q", e.Name))
	}
	return sb.String()
}

// Unwrap returns the underlying sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}
