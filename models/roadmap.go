package models

// Tier is a roadmap timeline bucket.
type Tier string

const (
	TierImmediate  Tier = "Immediate"
	TierShortTerm  Tier = "Short-term"
	TierMediumTerm Tier = "Medium-term"
	TierLongTerm   Tier = "Long-term"
	TierStrategic  Tier = "Strategic"
)

// Tiers lists every tier from most to least urgent.
var Tiers = []Tier{TierImmediate, TierShortTerm, TierMediumTerm, TierLongTerm, TierStrategic}

// TierForPriority is total and non-overlapping: 5, 4, 3 and 2 have their
// own tier, anything else is Strategic.
func TierForPriority(priority int) Tier {
	switch priority {
	case 5:
		return TierImmediate
	case 4:
		return TierShortTerm
	case 3:
		return TierMediumTerm
	case 2:
		return TierLongTerm
	default:
		return TierStrategic
	}
}

// Window is the human readable time span of the tier.
func (t Tier) Window() string {
	switch t {
	case TierImmediate:
		return "0-30 days"
	case TierShortTerm:
		return "1-3 months"
	case TierMediumTerm:
		return "3-6 months"
	case TierLongTerm:
		return "6-12 months"
	default:
		return "12+ months"
	}
}

// Roadmap maps each tier to best-practice titles in input order.
type Roadmap map[Tier][]string
