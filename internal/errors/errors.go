package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to branch on the outcome
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a resource that is in an incompatible state for the requested transition
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// TransientConflictError is returned by the store when a transaction lost a race.
// The service retries these and reports ErrTryAgain once retries are exhausted.
type TransientConflictError struct {
	Cause error
}

func (e *TransientConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transient store conflict: %v", e.Cause)
	}
	return "transient store conflict"
}

func (e *TransientConflictError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrClubNotFound           = &NotFoundError{Entity: "club"}
	ErrMembershipNotFound     = &NotFoundError{Entity: "membership"}
	ErrEventNotFound          = &NotFoundError{Entity: "event"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrJoinRequestNotFound    = &NotFoundError{Entity: "join request"}
	ErrTeamMembershipNotFound = &NotFoundError{Entity: "team membership"}
)

// Conflict Errors
var (
	ErrMembershipExists           = &ConflictError{Reason: "a membership for this club already exists"}
	ErrMembershipAlreadyProcessed = &ConflictError{Reason: "membership already processed"}
	ErrMembershipNotActive        = &ConflictError{Reason: "membership is not active"}
	ErrMembershipNotPending       = &ConflictError{Reason: "membership is not pending"}
	ErrClubLeaderCannotLeave      = &ConflictError{Reason: "the club chairman cannot leave without a successor"}
	ErrClubLeaderCannotBeExpelled = &ConflictError{Reason: "the club chairman cannot be expelled"}
	ErrLeaderRoleImmutable        = &ConflictError{Reason: "the chairman role cannot be granted or revoked"}
	ErrClubNameTaken              = &ConflictError{Reason: "a club with this name already exists"}
	ErrTeamFull                   = &ConflictError{Reason: "team is full"}
	ErrAlreadyInTeamForEvent      = &ConflictError{Reason: "user already belongs to a team for this event"}
	ErrAlreadyTeamMember          = &ConflictError{Reason: "user is already a member of this team"}
	ErrDuplicateJoinRequest       = &ConflictError{Reason: "user already has an open join request for this event"}
	ErrJoinRequestNotPending      = &ConflictError{Reason: "join request is not pending"}
	ErrTeamLeaderCannotLeave      = &ConflictError{Reason: "team leader cannot leave; disband the team instead"}
	ErrTeamNameTaken              = &ConflictError{Reason: "a team with this name already exists for this event"}
	ErrTryAgain                   = &ConflictError{Reason: "the resource was modified concurrently, try again"}
)

// Authorization Errors
var (
	ErrForbidden          = &AuthorizationError{Message: "forbidden"}
	ErrNotTeamLeader      = &AuthorizationError{Message: "only the team leader may perform this action"}
	ErrNotTeamMember      = &AuthorizationError{Message: "only team members may perform this action"}
	ErrInsufficientRank   = &AuthorizationError{Message: "actor does not outrank the target member"}
	ErrUnauthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid or expired token"}
)

// Request Errors
var (
	ErrInvalidStatus           = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidPaginationParams = &ValidationError{Field: "limit", Message: "invalid pagination parameters"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransientConflict checks if an error is a TransientConflictError
func IsTransientConflict(err error) bool {
	var transientErr *TransientConflictError
	return errors.As(err, &transientErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// KindOf maps an error onto the taxonomy exposed to callers.
// A transient conflict that escaped the retry loop is reported as a conflict.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return KindValidation
	case IsAuthentication(err):
		return KindAuthentication
	case IsAuthorization(err):
		return KindAuthorization
	case IsNotFound(err):
		return KindNotFound
	case IsConflict(err), IsTransientConflict(err):
		return KindConflict
	default:
		return KindInternal
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(reason string) error {
	return &ConflictError{Reason: reason}
}

// NewTransientConflictError wraps a store error that is safe to retry
func NewTransientConflictError(cause error) error {
	return &TransientConflictError{Cause: cause}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
