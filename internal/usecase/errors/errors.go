package errors

import "errors"

// Not-found errors
var (
	ErrMoMNotFound         = errors.New("mom not found")
	ErrInformationNotFound = errors.New("information not found")
	ErrDecisionNotFound    = errors.New("decision not found")
	ErrActionItemNotFound  = errors.New("action item not found")
)

// Validation errors
var (
	ErrInvalidSkip       = errors.New("skip must be zero or greater")
	ErrInvalidLimit      = errors.New("limit must be between 1 and 100")
	ErrInvalidDays       = errors.New("days must be between 1 and 30")
	ErrEmptyRemarkText   = errors.New("remark text is required")
	ErrEmptyRemarkAuthor = errors.New("username is required")
	ErrInvalidSortField  = errors.New("unsupported sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be asc or desc")
	ErrInvalidTimeWindow = errors.New("start_time must be before end_time")
	ErrInvalidMeetingID  = errors.New("mom_id must be a positive integer")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMoMNotFound) ||
		errors.Is(err, ErrInformationNotFound) ||
		errors.Is(err, ErrDecisionNotFound) ||
		errors.Is(err, ErrActionItemNotFound)
}

// IsValidation reports whether err is one of the validation sentinels.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidSkip,
		ErrInvalidLimit,
		ErrInvalidDays,
		ErrEmptyRemarkText,
		ErrEmptyRemarkAuthor,
		ErrInvalidSortField,
		ErrInvalidSortOrder,
		ErrInvalidTimeWindow,
		ErrInvalidMeetingID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
