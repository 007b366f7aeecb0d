package pricing

// CaffeineLevel is the requested caffeine variant for a drink.
type CaffeineLevel string

const (
	// CaffeineRegular is the default caffeinated preparation.
	CaffeineRegular CaffeineLevel = "REGULAR"
	// CaffeineDecaf requests a decaffeinated preparation.
	CaffeineDecaf CaffeineLevel = "DECAF"
)

// MilkLevel is the requested milk quantity for a drink.
type MilkLevel string

const (
	// MilkNormal is the default milk quantity.
	MilkNormal MilkLevel = "NORMAL"
	// MilkMore requests extra milk.
	MilkMore MilkLevel = "MORE"
)

// TasteSpec describes the customization of a single drink: extra espresso
// shots plus optional caffeine and milk preferences. The zero value of the
// enum fields means "unspecified" and never attracts a surcharge.
//
// TasteSpec is an immutable value compared by value; it carries no identity.
type TasteSpec struct {
	Shots    int
	Caffeine CaffeineLevel
	Milk     MilkLevel
}
