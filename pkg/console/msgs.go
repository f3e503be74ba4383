package console

// MsgInvalidInput is shown when a line cannot be parsed as a number.
// The re-prompt loop recovers from this locally; it never surfaces to
// the session.
const MsgInvalidInput = "Invalid input. Please enter a numeric value."
