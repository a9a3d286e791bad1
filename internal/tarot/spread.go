package tarot

// SpreadType identifies how many cards a reading draws.
type SpreadType string

const (
	SpreadSingle      SpreadType = "single"
	SpreadThree       SpreadType = "three"
	SpreadCelticCross SpreadType = "celtic-cross"
)

var spreadCounts = map[SpreadType]int{
	SpreadSingle:      1,
	SpreadThree:       3,
	SpreadCelticCross: 10,
}

// ParseSpread validates a raw spread type value from a request.
func ParseSpread(raw string) (SpreadType, error) {
	s := SpreadType(raw)
	if _, ok := spreadCounts[s]; !ok {
		return "", ErrInvalidSpread
	}
	return s, nil
}

// CardCount returns the number of cards the spread draws.
// Zero for unknown spreads.
func (s SpreadType) CardCount() int {
	return spreadCounts[s]
}

// Spreads returns all valid spread types.
func Spreads() []SpreadType {
	return []SpreadType{SpreadSingle, SpreadThree, SpreadCelticCross}
}
