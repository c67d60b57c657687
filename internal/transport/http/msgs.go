package http

const (
	MsgInvalidID    = "invalid id"
	MsgInvalidJSON  = "invalid JSON"
	MsgTooLarge     = "request body too large"
	MsgValidation   = "validation error"
	MsgInvalidScope = "invalid scope"
	MsgNotFound     = "not found"
	MsgInternal     = "internal error"
	MsgConflict     = "conflict"
	MsgUnavailable  = "service unavailable"
)
