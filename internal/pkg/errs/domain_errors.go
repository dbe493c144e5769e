package errs

import "errors"

// Sentinels shared by the command and query sides.
var (
	// Lookup errors
	ErrOrderNotFound = errors.New("order not found")
	ErrUnitNotFound  = errors.New("unit not found")

	// Access errors
	ErrForbidden = errors.New("operation not permitted for this user")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
