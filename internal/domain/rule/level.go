package rule

// Level identifies where in the entity hierarchy a rule sheet is attached.
// Surge is a virtual level used only by the price engine; it never carries
// entity defaults.
type Level string

const (
	LevelCustomer    Level = "CUSTOMER"
	LevelLocation    Level = "LOCATION"
	LevelSubLocation Level = "SUBLOCATION"
	LevelEvent       Level = "EVENT"
	LevelSurge       Level = "SURGE"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) IsValid() bool {
	switch l {
	case LevelCustomer, LevelLocation, LevelSubLocation, LevelEvent, LevelSurge:
		return true
	default:
		return false
	}
}

// Rank returns the dominance order used by the priority resolver.
// A higher rank always beats a lower one, regardless of the sheets'
// declared priority numbers.
func (l Level) Rank() int {
	switch l {
	case LevelSurge:
		return 5
	case LevelEvent:
		return 4
	case LevelSubLocation:
		return 3
	case LevelLocation:
		return 2
	case LevelCustomer:
		return 1
	default:
		return 0
	}
}

// CascadeOrder is the fallback order for entity defaults when no rule sheet
// matches an hour. Surge has no defaults and is not part of the cascade.
var CascadeOrder = [4]Level{LevelEvent, LevelSubLocation, LevelLocation, LevelCustomer}
