package pricing

// GenreComedy is the catalog tag priced by Comedy.
const GenreComedy = "comedy"

// Comedy charges 300.00, a 100.00 surcharge plus 5.00 per seat above 20, and
// 3.00 per seat overall. It also awards one extra credit per five attendees.
type Comedy struct {
	BaseStrategy
}

var _ Strategy = Comedy{}

// NewComedy creates the comedy strategy.
func NewComedy() Comedy {
	return Comedy{BaseStrategy: NewBaseStrategy(GenreComedy)}
}

func (Comedy) Price(audience int) int64 {
	a := int64(audience)
	result := int64(30000)
	if a > 20 {
		result += 10000 + 500*(a-20)
	}
	result += 300 * a
	return result
}

func (Comedy) Credits(audience int) int64 {
	return BaseCredits(audience) + int64(audience/5)
}
