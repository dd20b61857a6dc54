// Package hederr defines the sentinel error kinds shared across the
// normalisation and build pipeline. It sits below every other package
// so any layer can classify failures with errors.Is.
package hederr

import "errors"

var (
	// ErrValidation marks parameter payloads rejected by a tool's schema.
	ErrValidation = errors.New("invalid parameters")

	// ErrIdentityResolution marks a failure to determine the acting
	// account when no explicit id was supplied.
	ErrIdentityResolution = errors.New("could not resolve account identity")

	// ErrKeyParse marks a key string that is neither a valid public key
	// nor a parseable key structure.
	ErrKeyParse = errors.New("could not parse key")

	// ErrInvalidAmount marks amounts that are zero, negative, or
	// otherwise outside the operation's domain.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDecimalsUnavailable marks a token whose decimals could not be
	// read from the mirror node.
	ErrDecimalsUnavailable = errors.New("unable to retrieve token decimals")

	// ErrSupplyConstraint marks inconsistent supply parameters on token
	// creation.
	ErrSupplyConstraint = errors.New("supply constraint violated")

	// ErrInvalidTransactionID marks a transaction id string in neither
	// the SDK nor the mirror format.
	ErrInvalidTransactionID = errors.New("invalid transaction id")

	// ErrMissingOwner marks an allowance spend with no explicit owner
	// account.
	ErrMissingOwner = errors.New("missing owner account")
)
