package shipping

// User-facing rejection messages. These are display strings, surfaced
// verbatim by the session when validation fails.
const (
	MsgTooHeavy = "Package too heavy to be shipped via Package Express. Have a good day."
	MsgTooBig   = "Package too big to be shipped via Package Express."
)
