package bpost

import "fmt"

// InvalidSelectionError is the service's structured rejection: the
// response body was an XML document whose root element name starts with
// "invalid", carrying a message and an error code.
type InvalidSelectionError struct {
	Message string
	Code    int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("bpost: invalid selection (code %d): %s", e.Code, e.Message)
}

// InvalidResponseError reports a non-success HTTP status without a
// structured error body. Message holds the raw body text when the
// response was text/plain or a 400/404, and is empty otherwise.
type InvalidResponseError struct {
	StatusCode int
	Message    string
}

func (e *InvalidResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bpost: unexpected response status %d", e.StatusCode)
	}
	return fmt.Sprintf("bpost: unexpected response status %d: %s", e.StatusCode, e.Message)
}

// InvalidXMLResponseError reports a success status whose body could not
// be parsed as XML when a document was expected.
type InvalidXMLResponseError struct {
	Err error
}

func (e *InvalidXMLResponseError) Error() string {
	return fmt.Sprintf("bpost: response is not valid XML: %v", e.Err)
}

func (e *InvalidXMLResponseError) Unwrap() error { return e.Err }
