package card

// StatusUnrestricted is the banlist status used for sorting when a card has none
const StatusUnrestricted = 99

// Rarity is the Master Duel rarity tier of a card
type Rarity string

const (
	RarityNone   Rarity = ""
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
)

// Recognized reports whether r is one of the two tiers kept in the working dataset
func (r Rarity) Recognized() bool {
	return r == RarityCommon || r == RarityRare
}

// Tier returns 0 for the common tier and 1 for everything else
func (r Rarity) Tier() int {
	if r == RarityCommon {
		return 0
	}
	return 1
}

// Badge returns the short marker shown next to a card name
func (r Rarity) Badge() string {
	switch r {
	case RarityCommon:
		return "N"
	case RarityRare:
		return "R"
	default:
		return ""
	}
}

// Record represents a card in the catalog
type Record struct {
	ID        int    `json:"id,omitempty"         yaml:"id,omitempty"`
	Name      string `json:"name"                 yaml:"name"`
	Archetype string `json:"archetype,omitempty"  yaml:"archetype,omitempty"`
	FrameType string `json:"frameType,omitempty"  yaml:"frame_type,omitempty"`
	Rarity    Rarity `json:"rarity"               yaml:"rarity"`
	Status    *int   `json:"status,omitempty"     yaml:"status,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"   yaml:"image_url,omitempty"`
	DetailURL string `json:"detailUrl,omitempty"  yaml:"detail_url,omitempty"`
}

// StatusValue returns the banlist status, or StatusUnrestricted when absent
func (r Record) StatusValue() int {
	if r.Status == nil {
		return StatusUnrestricted
	}
	return *r.Status
}

// Restricted reports whether the card carries a banlist status in [0,2]
func (r Record) Restricted() bool {
	return r.Status != nil && *r.Status >= 0 && *r.Status <= 2
}

// Category returns the classified category of the card's frame type
func (r Record) Category() Category {
	return Classify(r.FrameType)
}
