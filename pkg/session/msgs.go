package session

// Session transcript strings. The prompts are issued in fixed order:
// weight, width, height, length.
const (
	MsgWelcome      = "Welcome to Package Express. Please follow the instructions below."
	MsgPromptWeight = "Please enter the package weight:"
	MsgPromptWidth  = "Please enter the package width:"
	MsgPromptHeight = "Please enter the package height:"
	MsgPromptLength = "Please enter the package length:"
	MsgCostFormat   = "Your estimated total for shipping this package is: $%.2f"
	MsgThankYou     = "Thank you!"
)
