// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenReused  = errors.New("refresh token reuse detected")
)

// Organization errors
var (
	ErrOrgNotFound             = errors.New("organization not found")
	ErrOrgSlugTaken            = errors.New("organization slug is already taken")
	ErrNotOrgMember            = errors.New("you are not a member of this organization")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOwnerCannotLeave        = errors.New("owner must transfer ownership before leaving")
	ErrCannotRemoveOwner       = errors.New("cannot remove organization owner")
	ErrCannotRemoveSelf        = errors.New("cannot remove yourself, use leave endpoint")
	ErrCannotChangeOwnerRole   = errors.New("cannot change owner role, use transfer")
	ErrInvalidRole             = errors.New("invalid role for this organization")
	ErrSeatsExceeded           = errors.New("organization seats limit exceeded")
)

// Invitation errors
var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match your account")
	ErrAlreadyMember           = errors.New("user is already an organization member")
	ErrPendingInvitation       = errors.New("invitation already pending for this email")
)

// Content errors
var (
	ErrContentNotFound         = errors.New("content not found")
	ErrContentAlreadyPublished = errors.New("content is already published")
	ErrNotificationQueueFull   = errors.New("notification queue is full, please try again later")
)

// Classroom errors
var (
	ErrClassNotFound    = errors.New("class not found")
	ErrNotClassMember   = errors.New("you are not enrolled in this class")
	ErrAlreadyEnrolled  = errors.New("user is already enrolled in this class")
	ErrInvalidClassRole = errors.New("invalid role for this class")
)
