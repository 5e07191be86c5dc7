package services

import "fmt"

// GatewayError wraps a failure from the generative model call.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("AI service error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
