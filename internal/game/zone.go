package game

// EventTag is the outcome of sampling a zone's event table.
type EventTag string

const (
	EventCombat   EventTag = "combat"
	EventChest    EventTag = "chest"
	EventDialogue EventTag = "dialogue"
	EventKey      EventTag = "key"
	EventBoss     EventTag = "boss"
	EventRest     EventTag = "rest"
	EventMerchant EventTag = "merchant"
	// EventNothing is returned when a zone has no drawable event.
	EventNothing EventTag = "nothing"
)

// Access is the entry requirement of a zone.
type Access string

const (
	AccessNone Access = ""
	// AccessQuest requires the main quest to be at stage 1 or later.
	AccessQuest Access = "quest"
)

// WeightedEvent pairs a tag with its weight. Weights need not sum to 1.
type WeightedEvent struct {
	Tag    EventTag
	Weight float64
}

type Zone struct {
	Key         string
	Name        string
	Description string
	Events      []WeightedEvent
	// Enemies holds archetype keys for random encounters.
	Enemies []string
	Access  Access
	// Dialogue is the line shown on a dialogue event.
	Dialogue string
}
