package pricing

// GenreTragedy is the catalog tag priced by Tragedy.
const GenreTragedy = "tragedy"

// Tragedy charges a flat 400.00 plus 10.00 per seat above 30.
type Tragedy struct {
	BaseStrategy
}

var _ Strategy = Tragedy{}

// NewTragedy creates the tragedy strategy.
func NewTragedy() Tragedy {
	return Tragedy{BaseStrategy: NewBaseStrategy(GenreTragedy)}
}

func (Tragedy) Price(audience int) int64 {
	result := int64(40000)
	if audience > 30 {
		result += 1000 * int64(audience-30)
	}
	return result
}
