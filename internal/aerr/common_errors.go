package aerr

// common_errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.

// Error tags. Transport and parse failures are per-feed, storage failures
// abort only the current transaction, configuration failures abort only the
// current operation.
const (
	InternalError      = "internal error"
	ValidationError    = "validation error"
	TransportError     = "transport error"
	ParseError         = "parse error"
	StorageError       = "storage error"
	ConfigurationError = "configuration error"
)

var (
	ErrValidation  = NewSimple("validation error").WithTag(ValidationError)
	ErrInvalidConf = NewSimple("invalid configuration").WithTag(ConfigurationError)
	ErrDatabase    = NewSimple("database error").WithTag(StorageError).WithUserMsg("database error")
	ErrTransport   = NewSimple("transport error").WithTag(TransportError)
	ErrFeedParse   = NewSimple("feed parse error").WithTag(ParseError)
)
