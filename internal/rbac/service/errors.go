package service

import "errors"

var (
	// ErrInvalidRequest reports missing/blank required input. It is raised
	// before the evaluation pipeline runs.
	ErrInvalidRequest = errors.New("invalid request")

	ErrResourceNotFound   = errors.New("resource not found")
	ErrPermissionNotFound = errors.New("permission not found")
	ErrPolicyNotFound     = errors.New("policy not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)
