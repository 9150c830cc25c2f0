package errors

import (
	"errors"
	"fmt"
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation failure, rejected before any
// database round-trip
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

// AuthorizationError represents authorization-related errors (role checks
// failing before a mutation is attempted)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGroupNotFound   = &NotFoundError{Entity: "group"}
	ErrMemberNotFound  = &NotFoundError{Entity: "group member"}
	ErrMessageNotFound = &NotFoundError{Entity: "message"}
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrSlotNotFound    = &NotFoundError{Entity: "team slot"}
)

// Already Exists Errors
var (
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "for this group"}
	ErrMemberExists = &AlreadyExistsError{Entity: "group member", Context: "in this group"}
)

// Business Logic Errors
var (
	ErrEmptyGroupName       = &ValidationError{Field: "name", Message: "group name must not be empty"}
	ErrEmptyTeamName        = &ValidationError{Field: "name", Message: "team name must not be empty"}
	ErrEmptyMessageContent  = &ValidationError{Field: "content", Message: "message content must not be empty"}
	ErrInvalidStartersCount = &ValidationError{Field: "starters_count", Message: "starters count must be between 1 and 11"}
	ErrUnknownFormation     = &ValidationError{Field: "formation", Message: "formation unknown for this player count"}
	ErrOwnerCannotLeave     = &ValidationError{Field: "user_id", Message: "group owner cannot be removed from the group"}
	ErrUserNotGroupMember   = &ValidationError{Field: "user_id", Message: "user is not a member of the group"}
	ErrUserAlreadySlotted   = &ValidationError{Field: "user_id", Message: "user already occupies a slot in this team"}
)

// Authorization Errors
var (
	ErrNotGroupOwner = &AuthorizationError{Message: "only the group owner may perform this action"}
	ErrNotTeamOwner  = &AuthorizationError{Message: "only the team owner may perform this action"}
	ErrNotMember     = &AuthorizationError{Message: "requester is not a member of the group"}
)

// Authentication Errors
var (
	ErrMissingBearerToken = &AuthenticationError{Message: "missing or malformed bearer token"}
	ErrInvalidBearerToken = &AuthenticationError{Message: "invalid bearer token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
