package revenue

import "errors"

var (
	ErrPolicyNotFound  = errors.New("distribution policy not found")
	ErrPolicyNameTaken = errors.New("a policy with this name already exists")
	ErrPolicyInactive  = errors.New("distribution policy is inactive")
	ErrNoDefaultPolicy = errors.New("no default distribution policy configured")
)
