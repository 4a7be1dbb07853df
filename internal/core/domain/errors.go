package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP layer.
// The API error handler maps each to its status code and public message.
var ErrMissingFields = errors.New("all fields are required")
var ErrInvalidRole = errors.New("invalid role selected")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPropertyNotFound = errors.New("property not found")
var ErrNotOwner = errors.New("not the property owner")
