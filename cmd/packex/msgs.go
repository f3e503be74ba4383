package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Interactive shipping cost estimator for Package Express"
	MsgRootLong  = `packex estimates the cost of shipping a package via Package Express.

Run it with no arguments to start an interactive session: it collects the
package weight and dimensions, checks them against the shipping limits,
and prints the estimated cost.`
	MsgEstimateShort   = "Run an interactive estimation session"
	MsgEstimateLong    = "Estimate collects a package's weight and dimensions interactively and prints the estimated shipping cost."
	MsgLimitsShort     = "Show the configured shipping limits"
	MsgGenConfigShort  = "Print a commented default configuration file"
	MsgGenConfigLong   = "Genconfig prints the default configuration with every value commented out, ready to be saved as .packex.toml and edited."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
