package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. The HTTP adapter maps each kind onto a
// protocol status; the use cases never deal in status codes directly.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindNoOp
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindNoOp:
		return "no_op"
	default:
		return "internal"
	}
}

// Error is the typed failure returned across every use-case boundary.
// Two errors are considered equal by errors.Is when their codes match, so
// the sentinels below can be compared against errors carrying details.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Code, e.Message, e.Details)
}

// Is reports code equality with another *Error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of e carrying field-level details.
func (e *Error) WithDetails(details map[string]string) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// KindOf returns the kind of err, or KindInternal for anything that is not
// a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrInvalidInput = &Error{Kind: KindValidation, Code: "INVALID_INPUT", Message: "request contains invalid fields"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Code: "UNAUTHORIZED", Message: "invalid or missing credentials"}
	ErrForbidden    = &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: "caller does not own this campaign"}
	ErrNotFound     = &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: "campaign not found"}
	ErrInternal     = &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "internal server error"}

	// campaign lifecycle
	ErrOwnerProfileRequired  = &Error{Kind: KindForbidden, Code: "OWNER_PROFILE_REQUIRED", Message: "an advertiser profile is required"}
	ErrCreationLimitExceeded = &Error{Kind: KindConflict, Code: "CREATION_LIMIT_EXCEEDED", Message: "monthly campaign creation limit reached"}
	ErrLocked                = &Error{Kind: KindConflict, Code: "LOCKED", Message: "campaign can only be edited while recruiting"}
	ErrInvalidTransition     = &Error{Kind: KindConflict, Code: "INVALID_TRANSITION", Message: "campaign is no longer recruiting"}
	ErrNotStarted            = &Error{Kind: KindConflict, Code: "NOT_STARTED", Message: "campaign cannot be terminated before its start date"}

	// selection and rejection
	ErrCampaignNotClosed   = &Error{Kind: KindConflict, Code: "CAMPAIGN_NOT_CLOSED", Message: "recruitment must be closed before deciding on applicants"}
	ErrApplicantsNotFound  = &Error{Kind: KindNotFound, Code: "APPLICANTS_NOT_FOUND", Message: "some influencers did not apply to this campaign"}
	ErrAlreadyProcessed    = &Error{Kind: KindConflict, Code: "ALREADY_PROCESSED", Message: "some applications were already decided"}
	ErrCapacityExceeded    = &Error{Kind: KindConflict, Code: "CAPACITY_EXCEEDED", Message: "selection would exceed the recruitment count"}
	ErrNoOp                = &Error{Kind: KindNoOp, Code: "NO_OP", Message: "no application was updated"}

	// application submission
	ErrProfileRequired      = &Error{Kind: KindForbidden, Code: "PROFILE_REQUIRED", Message: "an influencer profile is required"}
	ErrNotRecruiting        = &Error{Kind: KindConflict, Code: "NOT_RECRUITING", Message: "campaign is not recruiting"}
	ErrInvalidVisitDate     = &Error{Kind: KindValidation, Code: "INVALID_VISIT_DATE", Message: "visit date must fall within the recruitment window"}
	ErrDuplicateApplication = &Error{Kind: KindConflict, Code: "DUPLICATE_APPLICATION", Message: "influencer already applied to this campaign"}
)
