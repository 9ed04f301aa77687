package achievements

// Rarity is the difficulty tier of an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// BonusPoints returns the point award for unlocking an achievement of
// this rarity. Unknown rarities fall back to the common bonus.
func (r Rarity) BonusPoints() int {
	switch r {
	case RarityCommon:
		return 10
	case RarityUncommon:
		return 25
	case RarityRare:
		return 50
	case RarityEpic:
		return 100
	case RarityLegendary:
		return 200
	default:
		return 10
	}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}
