package telephone

// InvalidMessage is shown next to a field whose input is not a phone number.
const InvalidMessage = "The string supplied did not seem to be a phone number."

// Outcome is the result of validating a Value: Valid, or Invalid with a
// user-facing message.
type Outcome struct {
	invalid bool
	message string
}

// Valid is the passing Outcome.
var Valid = Outcome{}

// Invalid returns a failing Outcome carrying message.
func Invalid(message string) Outcome {
	return Outcome{invalid: true, message: message}
}

func (o Outcome) IsValid() bool   { return !o.invalid }
func (o Outcome) Message() string { return o.message }

// Validate passes values without input (required-ness is the host's concern)
// and values whose parsed number the capability accepts. Everything else is
// Invalid with InvalidMessage.
func Validate(v Value) Outcome {
	if !v.HasInput() || v.IsValid() {
		return Valid
	}
	return Invalid(InvalidMessage)
}
