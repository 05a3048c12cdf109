package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Rule sheet errors
	ErrSheetNotFound      = errors.New("rule sheet not found")
	ErrInvalidSheetLevel  = errors.New("invalid hierarchy level")
	ErrInvalidSheetType   = errors.New("invalid sheet type")
	ErrInvalidWindow      = errors.New("invalid window definition")
	ErrInvalidEffectivity = errors.New("invalid effectivity period")

	// Override errors
	ErrOverrideNotFound = errors.New("hourly override not found")
	ErrInvalidOverride  = errors.New("invalid hourly override")

	// Quote errors
	ErrInvalidBookingSpan = errors.New("invalid booking span")
	ErrUnknownTimezone    = errors.New("unknown timezone")
	ErrEntityNotFound     = errors.New("hierarchy entity not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
