package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func looseStone() Product {
	return Product{
		ID:      "d1",
		Name:    "1.00 ct Round Lab Diamond",
		Type:    TypeLooseDiamond,
		Shape:   "Round",
		Clarity: "VS1",
		Color:   "E",
		Carat:   1.0,
		Price:   2000,
	}
}

func TestNewConfigurator_RequiresLooseStone(t *testing.T) {
	_, err := NewConfigurator(Product{ID: "s1", Type: TypeEngagementRing, Price: 3400})
	assert.ErrorIs(t, err, ErrNotLooseStone)
}

func TestNewConfigurator_RingDefaults(t *testing.T) {
	b, err := NewConfigurator(looseStone())
	assert.NoError(t, err)

	assert.Equal(t, ModeRing, b.Mode())
	assert.Equal(t, "Solitaire", b.Setting())
	assert.Equal(t, "18k White Gold", b.Metal)
	assert.Equal(t, "54 (EU)", b.Size)
	assert.Equal(t, "Push Back", b.Backing)
}

func TestConfigurator_EstimatedPrice(t *testing.T) {
	b, _ := NewConfigurator(looseStone())

	// 2000 stone + 300 Solitaire + 150 white gold
	assert.Equal(t, int64(2450), b.EstimatedPrice())

	assert.NoError(t, b.SetSetting("Halo"))
	b.Metal = "Platinum"
	assert.Equal(t, int64(2000+650+450), b.EstimatedPrice())

	// unmapped metal prices at zero surcharge
	b.Metal = "Titanium"
	assert.Equal(t, int64(2650), b.EstimatedPrice())
}

func TestConfigurator_ModeSwitchResetsSetting(t *testing.T) {
	b, _ := NewConfigurator(looseStone())
	assert.NoError(t, b.SetSetting("Three Stone"))

	assert.NoError(t, b.SetMode(ModeEarring))
	assert.Equal(t, "Classic Stud", b.Setting())

	// switching back does not restore the old choice
	assert.NoError(t, b.SetMode(ModeRing))
	assert.Equal(t, "Solitaire", b.Setting())
}

func TestConfigurator_SetModeSameModeKeepsSetting(t *testing.T) {
	b, _ := NewConfigurator(looseStone())
	assert.NoError(t, b.SetSetting("Halo"))

	assert.NoError(t, b.SetMode(ModeRing))
	assert.Equal(t, "Halo", b.Setting())
}

func TestConfigurator_SettingsAreDisjointPerMode(t *testing.T) {
	b, _ := NewConfigurator(looseStone())

	err := b.SetSetting("Classic Stud")
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.Equal(t, "Solitaire", b.Setting())

	assert.NoError(t, b.SetMode(ModeEarring))
	assert.ErrorIs(t, b.SetSetting("Solitaire"), ErrUnknownSetting)
	assert.NoError(t, b.SetSetting("Drop"))
}

func TestConfigurator_SetModeInvalid(t *testing.T) {
	b, _ := NewConfigurator(looseStone())
	assert.ErrorIs(t, b.SetMode("necklace"), ErrInvalidMode)
	assert.Equal(t, ModeRing, b.Mode())
}

func TestConfigurator_FinalizeRing(t *testing.T) {
	b, _ := NewConfigurator(looseStone())
	assert.NoError(t, b.SetSetting("Halo"))
	b.Metal = "Platinum"

	piece := b.Finalize()

	assert.NotEmpty(t, piece.ID)
	assert.NotEqual(t, "d1", piece.ID)
	assert.Equal(t, "1.00 ct Ring", piece.Name)
	assert.Equal(t, TypeCustomRing, piece.Type)
	assert.Equal(t, int64(3100), piece.Price)
	assert.True(t, piece.TripleEx)
	assert.Equal(t, "Round", piece.Shape)

	if assert.NotNil(t, piece.Config) {
		assert.Equal(t, ModeRing, piece.Config.Mode)
		assert.Equal(t, "Halo", piece.Config.Setting)
		assert.Equal(t, "Platinum", piece.Config.Metal)
		assert.Equal(t, "d1", piece.Config.BaseProductID)
	}
}

func TestConfigurator_FinalizeEarrings(t *testing.T) {
	stone := looseStone()
	stone.Carat = 0.75
	b, _ := NewConfigurator(stone)
	assert.NoError(t, b.SetMode(ModeEarring))
	b.Backing = "Screw Back"

	piece := b.Finalize()

	assert.Equal(t, "0.75 ct Earrings", piece.Name)
	assert.Equal(t, TypeCustomEarrings, piece.Type)
	// 2000 stone + 250 Classic Stud + 150 white gold
	assert.Equal(t, int64(2400), piece.Price)
	assert.Equal(t, "Screw Back", piece.Config.Backing)
}
