package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic             = errors.New("protocol: invalid magic")
	ErrUnsupportedProtocol  = errors.New("protocol: service sub-protocol is not supported")
	ErrInvalidAttribute     = errors.New("protocol: invalid packet attribute")
	ErrInvalidHeaderLen     = errors.New("protocol: invalid header length")
	ErrInvalidConfiguration = errors.New("protocol: invalid configuration")
)

// AttributeError reports a head field whose raw wire value does not
// match any registered value. The raw value travels with the error so
// callers can log the offending byte.
type AttributeError struct {
	Attribute string
	Raw       uint8
}

func (e AttributeError) Error() string {
	return fmt.Sprintf("protocol: invalid %s selector: 0x%02x", e.Attribute, e.Raw)
}

func (e AttributeError) Unwrap() error { return ErrInvalidAttribute }
