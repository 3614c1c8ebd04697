package entities

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ConfiguratorMode selects the kind of piece being built. Each mode has
// its own disjoint set of valid setting styles.
type ConfiguratorMode string

const (
	ModeRing    ConfiguratorMode = "ring"
	ModeEarring ConfiguratorMode = "earring"
)

var (
	RingSettings    = []string{"Solitaire", "Halo", "Pavé", "Three Stone"}
	EarringSettings = []string{"Classic Stud", "Halo Stud", "Drop"}
	MetalOptions    = []string{"18k White Gold", "18k Yellow Gold", "18k Rose Gold", "Platinum"}
	SizeOptions     = []string{"50 (EU)", "52 (EU)", "54 (EU)", "56 (EU)", "58 (EU)"}
	BackingOptions  = []string{"Push Back", "Screw Back"}

	// Surcharges in whole CHF; unmapped names price at 0.
	SettingPrices = map[string]int64{
		"Solitaire":    300,
		"Halo":         650,
		"Pavé":         550,
		"Three Stone":  800,
		"Classic Stud": 250,
		"Halo Stud":    500,
		"Drop":         700,
	}
	MetalPrices = map[string]int64{
		"18k White Gold":  150,
		"18k Yellow Gold": 150,
		"18k Rose Gold":   150,
		"Platinum":        450,
	}
)

var (
	ErrNotLooseStone  = errors.New("configurator requires a loose diamond")
	ErrInvalidMode    = errors.New("invalid configurator mode")
	ErrUnknownSetting = errors.New("setting style not valid for this mode")
)

// SettingsFor returns the valid setting styles of a mode.
func SettingsFor(mode ConfiguratorMode) []string {
	if mode == ModeEarring {
		return EarringSettings
	}
	return RingSettings
}

// Configurator composes a loose stone with a setting into a finished
// piece. The estimated price is a pure function of the current selections.
type Configurator struct {
	Stone   Product
	mode    ConfiguratorMode
	setting string
	Metal   string
	Size    string
	Backing string
}

// NewConfigurator starts a build around a loose stone with the default
// ring selections.
func NewConfigurator(stone Product) (*Configurator, error) {
	if stone.Type != TypeLooseDiamond {
		return nil, ErrNotLooseStone
	}
	return &Configurator{
		Stone:   stone,
		mode:    ModeRing,
		setting: RingSettings[0],
		Metal:   MetalOptions[0],
		Size:    "54 (EU)",
		Backing: BackingOptions[0],
	}, nil
}

func (b *Configurator) Mode() ConfiguratorMode {
	return b.mode
}

func (b *Configurator) Setting() string {
	return b.setting
}

// SetMode switches between ring and earring builds. Styles are not shared
// between modes, so the setting resets to the new mode's first style.
func (b *Configurator) SetMode(mode ConfiguratorMode) error {
	if mode != ModeRing && mode != ModeEarring {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if mode == b.mode {
		return nil
	}
	b.mode = mode
	b.setting = SettingsFor(mode)[0]
	return nil
}

// SetSetting selects a style from the current mode's set.
func (b *Configurator) SetSetting(style string) error {
	for _, s := range SettingsFor(b.mode) {
		if s == style {
			b.setting = style
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSetting, style)
}

// EstimatedPrice is stone price plus setting and metal surcharges.
func (b *Configurator) EstimatedPrice() int64 {
	return b.Stone.Price + SettingPrices[b.setting] + MetalPrices[b.Metal]
}

// Finalize produces the composite product that goes into the cart, with a
// generated id and a snapshot of the selections.
func (b *Configurator) Finalize() Product {
	name := fmt.Sprintf("%.2f ct Ring", b.Stone.Carat)
	typ := TypeCustomRing
	if b.mode == ModeEarring {
		name = fmt.Sprintf("%.2f ct Earrings", b.Stone.Carat)
		typ = TypeCustomEarrings
	}
	return Product{
		ID:       uuid.New().String(),
		Name:     name,
		Type:     typ,
		Shape:    b.Stone.Shape,
		Clarity:  b.Stone.Clarity,
		Color:    b.Stone.Color,
		Carat:    b.Stone.Carat,
		Price:    b.EstimatedPrice(),
		TripleEx: true,
		Config: &JewelleryConfig{
			Mode:          b.mode,
			Setting:       b.setting,
			Metal:         b.Metal,
			Size:          b.Size,
			Backing:       b.Backing,
			BaseProductID: b.Stone.ID,
		},
	}
}
