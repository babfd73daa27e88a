package models

// InsultCommandPrefix is the trigger text for the insult command
const InsultCommandPrefix = "!insult"

type TargetKind int

const (
	TargetKindNone TargetKind = iota
	TargetKindName
	TargetKindMention
)

func (k TargetKind) String() string {
	switch k {
	case TargetKindName:
		return "name"
	case TargetKindMention:
		return "mention"
	default:
		return "none"
	}
}

// InsultCommand is a parsed `!insult` invocation.
// Name is set for TargetKindName, UserID (decimal snowflake) for TargetKindMention.
type InsultCommand struct {
	Kind   TargetKind
	Name   string
	UserID string
}
