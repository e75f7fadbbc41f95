package engineerr

import "fmt"

// Closed set of error codes. Every constructor below produces an Error
// whose Code is one of these; no other string value is ever assigned to
// Error.Code.
const (
	CodeEmptyStudentData      = "EMPTY_STUDENT_DATA"
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	CodeDuplicateStudentNames = "DUPLICATE_STUDENT_NAMES"
	CodeStudentNoFriends      = "STUDENT_NO_FRIENDS"
	CodeUnknownFriend         = "UNKNOWN_FRIEND"
	CodeIsolatedStudents      = "ISOLATED_STUDENTS"
	CodeInvalidClassCount     = "INVALID_CLASS_COUNT"
	CodeInvalidStudentCount   = "INVALID_STUDENT_COUNT"
	CodeTooManyClasses        = "TOO_MANY_CLASSES"
	CodeClassSizeTooSmall     = "CLASS_SIZE_TOO_SMALL"
	CodeAssignmentFailed      = "ASSIGNMENT_FAILED"
	CodeNoSolutionFound       = "NO_SOLUTION_FOUND"
	CodeOptimizationTimeout   = "OPTIMIZATION_TIMEOUT"
	CodeInternalServerError   = "INTERNAL_SERVER_ERROR"
)

// Error is the engine's structured error envelope: a stable Code for
// programmatic dispatch, Params for message interpolation, and a
// human-readable Message for logs and debug output.
type Error struct {
	Code    string
	Params  map[string]any
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// newErr is the shared constructor every named constructor below funnels
// through, keeping Params non-nil so callers never nil-check it.
func newErr(code, message string, params map[string]any) *Error {
	if params == nil {
		params = map[string]any{}
	}

	return &Error{Code: code, Params: params, Message: message}
}

// EmptyStudentData reports a roster with zero students. count is always 0.
func EmptyStudentData(count int) *Error {
	return newErr(CodeEmptyStudentData,
		"roster contains no students",
		map[string]any{"count": count})
}

// MissingRequiredFields reports a student record missing one or more of
// name, gender, academic, behavior.
func MissingRequiredFields(studentName string, fields []string) *Error {
	return newErr(CodeMissingRequiredFields,
		fmt.Sprintf("student %q is missing required fields: %v", studentName, fields),
		map[string]any{"studentName": studentName, "fields": fields})
}

// DuplicateStudentNames reports names that appear more than once in the roster.
func DuplicateStudentNames(duplicates []string) *Error {
	return newErr(CodeDuplicateStudentNames,
		fmt.Sprintf("duplicate student names: %v", duplicates),
		map[string]any{"duplicates": duplicates})
}

// InvalidClassCount reports a non-positive K.
func InvalidClassCount(classesNumber int) *Error {
	return newErr(CodeInvalidClassCount,
		fmt.Sprintf("classesNumber must be positive, got %d", classesNumber),
		map[string]any{"classesNumber": classesNumber})
}

// InvalidStudentCount reports a roster size that cannot be reconciled
// with any K (e.g. a negative or otherwise corrupt count surfaced before
// the emptiness check applies).
func InvalidStudentCount(count int) *Error {
	return newErr(CodeInvalidStudentCount,
		fmt.Sprintf("invalid student count: %d", count),
		map[string]any{"count": count})
}

// TooManyClasses reports K exceeding the roster size.
func TooManyClasses(classesNumber, rosterSize int) *Error {
	return newErr(CodeTooManyClasses,
		fmt.Sprintf("classesNumber %d exceeds roster size %d", classesNumber, rosterSize),
		map[string]any{"classesNumber": classesNumber, "rosterSize": rosterSize})
}

// ClassSizeTooSmall reports floor(N/K) below the configured minimum.
func ClassSizeTooSmall(minClassSize, actual int) *Error {
	return newErr(CodeClassSizeTooSmall,
		fmt.Sprintf("average class size %d is below configured minimum %d", actual, minClassSize),
		map[string]any{"minClassSize": minClassSize, "actual": actual})
}

// StudentNoFriends reports a student whose friends list is empty prior
// to graph construction.
func StudentNoFriends(studentName string) *Error {
	return newErr(CodeStudentNoFriends,
		fmt.Sprintf("student %q lists no friends", studentName),
		map[string]any{"studentName": studentName})
}

// UnknownFriend reports a friend or not_with name absent from the roster.
func UnknownFriend(studentName, friendName string) *Error {
	return newErr(CodeUnknownFriend,
		fmt.Sprintf("student %q references unknown name %q", studentName, friendName),
		map[string]any{"studentName": studentName, "friendName": friendName})
}

// IsolatedStudents reports students with degree zero in G after
// symmetric closure and normalization.
func IsolatedStudents(students []string) *Error {
	return newErr(CodeIsolatedStudents,
		fmt.Sprintf("students with no friendship edge after normalization: %v", students),
		map[string]any{"students": students})
}

// AssignmentFailed reports a solver aborting for a reason other than
// proven infeasibility or deadline exhaustion.
func AssignmentFailed(reason string) *Error {
	return newErr(CodeAssignmentFailed,
		fmt.Sprintf("assignment failed: %s", reason),
		map[string]any{"reason": reason})
}

// NoSolutionFound reports the CSO solver proving infeasibility given the
// hard constraints.
func NoSolutionFound(reason string) *Error {
	return newErr(CodeNoSolutionFound,
		fmt.Sprintf("no feasible solution exists: %s", reason),
		map[string]any{"reason": reason})
}

// OptimizationTimeout reports the CSO deadline expiring with no feasible
// incumbent ever found.
func OptimizationTimeout(elapsedSeconds float64) *Error {
	return newErr(CodeOptimizationTimeout,
		fmt.Sprintf("optimization deadline of %.3fs reached with no feasible solution", elapsedSeconds),
		map[string]any{"elapsedSeconds": elapsedSeconds})
}

// InternalServerError wraps an unexpected fault (recovered panic,
// programmer error). details is redacted by the caller before this
// constructor runs: it must never contain student data.
func InternalServerError(details string) *Error {
	return newErr(CodeInternalServerError,
		"internal server error",
		map[string]any{"details": details})
}
