package port

import "github.com/juju/errors"

const (
	// ErrFetchFailed is returned by a one-shot read that did not complete
	// successfully: transport failure, non-2xx status or a malformed body.
	ErrFetchFailed = errors.ConstError("fetch failed")

	// ErrStreamTransport is reported when a push channel cannot be opened,
	// fails, or is closed by the server.
	ErrStreamTransport = errors.ConstError("stream transport error")

	// ErrMalformedMessage marks a single pushed payload that could not be
	// decoded.
	ErrMalformedMessage = errors.ConstError("malformed message")

	// ErrCampaignNotFound is returned when a campaign id is unknown.
	ErrCampaignNotFound = errors.ConstError("campaign not found")

	// ErrInvalidFilter is returned for a status filter outside the known set.
	ErrInvalidFilter = errors.ConstError("invalid status filter")
)
