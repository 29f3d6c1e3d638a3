// Package common defines shared sentinel errors used across the gateway
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

// Client-caused conditions. The API layer reports these as rejected
// requests, not as server faults.
var (
	// ErrDecode means the uploaded bytes could not be interpreted as an image.
	ErrDecode = errors.New("undecodable image")

	// ErrRejectedAsFake is the business-rule rejection of a registration
	// whose profile image was classified as synthetic.
	ErrRejectedAsFake = errors.New("image classified as fake")

	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// generic and never says whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// System-caused conditions, reported as internal errors.
var (
	// ErrInference means the classifier violated its scoring contract.
	ErrInference = errors.New("inference error")

	// ErrPersistence is a record store fault.
	ErrPersistence = errors.New("record store error")

	// ErrBlobStore is a blob store fault.
	ErrBlobStore = errors.New("blob store error")

	// ErrNotFound is a repository-level miss.
	ErrNotFound = errors.New("not found")
)

// IsClientFault reports whether err belongs to the client-caused class.
// Everything else in the taxonomy maps to an internal failure.
func IsClientFault(err error) bool {
	return errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrRejectedAsFake) ||
		errors.Is(err, ErrInvalidCredentials)
}
