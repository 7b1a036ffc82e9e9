package domain

// Intent is a canonical category of user question recognized by the
// classifier's pattern rules. Recognized intents short-circuit retrieval and
// resolve through the canned-response bank.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentSkills         Intent = "skills"
	IntentCapabilities   Intent = "capabilities"
	IntentTechPreference Intent = "tech_preference"
	IntentRoleFit        Intent = "role_fit"
	IntentExperience     Intent = "experience"
	IntentOutOfScope     Intent = "out_of_scope"
	IntentFollowUp       Intent = "follow_up"

	// IntentNone means no rule matched; the question goes through retrieval.
	IntentNone Intent = ""
)

// Classification is the classifier's result: either a recognized intent, or
// the original question passed through unchanged for retrieval.
type Classification struct {
	Intent Intent
	Query  string
}

// Recognized reports whether a canonical intent matched.
func (c Classification) Recognized() bool {
	return c.Intent != IntentNone
}
