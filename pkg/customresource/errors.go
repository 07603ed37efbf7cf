package customresource

import "fmt"

type (
	UnknownRequestTypeError struct {
		RequestType string
	}

	// ExternalCallError is returned when a Bedrock call succeeded but its response is missing the created resource.
	ExternalCallError struct {
		Operation string
		Reason    string
	}
)

const (
	primaryResourceMissing   = "primary resource creation returned no resource"
	dependentResourceMissing = "dependent resource creation returned no resource"
)

func (e UnknownRequestTypeError) Error() string {
	return fmt.Sprintf("unknown request type %q", e.RequestType)
}

func (e ExternalCallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
}
