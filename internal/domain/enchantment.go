package domain

import (
	"fmt"
	"maps"
	"strings"
)

// Enchantment identifies an enchantment by its registry name
type Enchantment string

const (
	EnchantmentProtection           Enchantment = "PROTECTION"
	EnchantmentFireProtection       Enchantment = "FIRE_PROTECTION"
	EnchantmentFeatherFalling       Enchantment = "FEATHER_FALLING"
	EnchantmentBlastProtection      Enchantment = "BLAST_PROTECTION"
	EnchantmentProjectileProtection Enchantment = "PROJECTILE_PROTECTION"
	EnchantmentRespiration          Enchantment = "RESPIRATION"
	EnchantmentAquaAffinity         Enchantment = "AQUA_AFFINITY"
	EnchantmentThorns               Enchantment = "THORNS"
	EnchantmentDepthStrider         Enchantment = "DEPTH_STRIDER"
	EnchantmentFrostWalker          Enchantment = "FROST_WALKER"
	EnchantmentBindingCurse         Enchantment = "BINDING_CURSE"
	EnchantmentSharpness            Enchantment = "SHARPNESS"
	EnchantmentSmite                Enchantment = "SMITE"
	EnchantmentBaneOfArthropods     Enchantment = "BANE_OF_ARTHROPODS"
	EnchantmentKnockback            Enchantment = "KNOCKBACK"
	EnchantmentFireAspect           Enchantment = "FIRE_ASPECT"
	EnchantmentLooting              Enchantment = "LOOTING"
	EnchantmentSweepingEdge         Enchantment = "SWEEPING_EDGE"
	EnchantmentEfficiency           Enchantment = "EFFICIENCY"
	EnchantmentSilkTouch            Enchantment = "SILK_TOUCH"
	EnchantmentUnbreaking           Enchantment = "UNBREAKING"
	EnchantmentFortune              Enchantment = "FORTUNE"
	EnchantmentPower                Enchantment = "POWER"
	EnchantmentPunch                Enchantment = "PUNCH"
	EnchantmentFlame                Enchantment = "FLAME"
	EnchantmentInfinity             Enchantment = "INFINITY"
	EnchantmentLuckOfTheSea         Enchantment = "LUCK_OF_THE_SEA"
	EnchantmentLure                 Enchantment = "LURE"
	EnchantmentLoyalty              Enchantment = "LOYALTY"
	EnchantmentImpaling             Enchantment = "IMPALING"
	EnchantmentRiptide              Enchantment = "RIPTIDE"
	EnchantmentChanneling           Enchantment = "CHANNELING"
	EnchantmentMultishot            Enchantment = "MULTISHOT"
	EnchantmentQuickCharge          Enchantment = "QUICK_CHARGE"
	EnchantmentPiercing             Enchantment = "PIERCING"
	EnchantmentMending              Enchantment = "MENDING"
	EnchantmentVanishingCurse       Enchantment = "VANISHING_CURSE"
)

// Vanilla maximum levels. Unsafe enchanting ignores them.
var enchantmentMaxLevels = map[Enchantment]int{
	EnchantmentProtection:           4,
	EnchantmentFireProtection:       4,
	EnchantmentFeatherFalling:       4,
	EnchantmentBlastProtection:      4,
	EnchantmentProjectileProtection: 4,
	EnchantmentRespiration:          3,
	EnchantmentAquaAffinity:         1,
	EnchantmentThorns:               3,
	EnchantmentDepthStrider:         3,
	EnchantmentFrostWalker:          2,
	EnchantmentBindingCurse:         1,
	EnchantmentSharpness:            5,
	EnchantmentSmite:                5,
	EnchantmentBaneOfArthropods:     5,
	EnchantmentKnockback:            2,
	EnchantmentFireAspect:           2,
	EnchantmentLooting:              3,
	EnchantmentSweepingEdge:         3,
	EnchantmentEfficiency:           5,
	EnchantmentSilkTouch:            1,
	EnchantmentUnbreaking:           3,
	EnchantmentFortune:              3,
	EnchantmentPower:                5,
	EnchantmentPunch:                2,
	EnchantmentFlame:                1,
	EnchantmentInfinity:             1,
	EnchantmentLuckOfTheSea:         3,
	EnchantmentLure:                 3,
	EnchantmentLoyalty:              3,
	EnchantmentImpaling:             5,
	EnchantmentRiptide:              3,
	EnchantmentChanneling:           1,
	EnchantmentMultishot:            1,
	EnchantmentQuickCharge:          3,
	EnchantmentPiercing:             4,
	EnchantmentMending:              1,
	EnchantmentVanishingCurse:       1,
}

// ParseEnchantment resolves an enchantment by name, case-insensitively
func ParseEnchantment(name string) (Enchantment, error) {
	e := Enchantment(strings.ToUpper(strings.TrimSpace(name)))
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnchantment, name)
	}
	return e, nil
}

func (e Enchantment) Valid() bool {
	_, ok := enchantmentMaxLevels[e]
	return ok
}

func (e Enchantment) MaxLevel() int {
	return enchantmentMaxLevels[e]
}

// Enchantments maps an enchantment to its level
type Enchantments map[Enchantment]int

// Clone copies the map; nil stays nil
func (e Enchantments) Clone() Enchantments {
	return maps.Clone(e)
}
