package shared

import "fmt"

var (
	// Store access errors
	ErrConnection  = fmt.Errorf("store unreachable")
	ErrQuery       = fmt.Errorf("query failed")
	ErrWrite       = fmt.Errorf("write failed")
	ErrConstraint  = fmt.Errorf("uniqueness constraint violated")
	ErrTransaction = fmt.Errorf("transaction could not begin")
	ErrCommit      = fmt.Errorf("commit failed")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
