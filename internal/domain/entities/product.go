package entities

// ProductType distinguishes loose stones from finished and custom pieces.
type ProductType string

const (
	TypeLooseDiamond   ProductType = "Loose Diamond"
	TypeEngagementRing ProductType = "Engagement Ring"
	TypeEarrings       ProductType = "Earrings"
	TypeCustomRing     ProductType = "Custom Ring"
	TypeCustomEarrings ProductType = "Custom Earrings"
)

// Product is one purchasable item in the catalog. Products loaded from the
// store are immutable for the lifetime of the session; composite products
// built by the configurator additionally carry a JewelleryConfig snapshot.
type Product struct {
	ID         string
	Name       string
	Type       ProductType
	Shape      string
	Clarity    string
	Color      string
	Carat      float64
	Price      int64 // whole CHF
	Image      string
	TripleEx   bool
	BestSeller bool
	Config     *JewelleryConfig
}

// JewelleryConfig records how a composite product was assembled.
type JewelleryConfig struct {
	Mode          ConfiguratorMode
	Setting       string
	Metal         string
	Size          string
	Backing       string
	BaseProductID string
}

var (
	DiamondShapes = []string{"Round", "Princess", "Oval", "Emerald", "Pear", "Cushion", "Marquise", "Radiant"}
	ClarityGrades = []string{"IF", "VVS1", "VVS2", "VS1", "VS2", "SI1"}
	ColorGrades   = []string{"D", "E", "F", "G", "H"}
)
