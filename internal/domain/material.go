package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies the type of an item stack (e.g., "DIAMOND_SWORD")
type Material string

// MetaKind describes which optional meta capabilities a material carries.
// Damageable metas also accept a repair cost; skull metas accept an owner.
type MetaKind string

const (
	MetaKindNone       MetaKind = ""
	MetaKindBasic      MetaKind = "BASIC"
	MetaKindDamageable MetaKind = "DAMAGEABLE"
	MetaKindSkull      MetaKind = "SKULL"
)

// Default stack sizes
const (
	DefaultMaxStackSize = 64
	SmallMaxStackSize   = 16
	SingleStackSize     = 1
)

const (
	MaterialAir             Material = "AIR"
	MaterialStone           Material = "STONE"
	MaterialDirt            Material = "DIRT"
	MaterialCobblestone     Material = "COBBLESTONE"
	MaterialOakLog          Material = "OAK_LOG"
	MaterialOakPlanks       Material = "OAK_PLANKS"
	MaterialStick           Material = "STICK"
	MaterialDiamond         Material = "DIAMOND"
	MaterialEmerald         Material = "EMERALD"
	MaterialIronIngot       Material = "IRON_INGOT"
	MaterialGoldIngot       Material = "GOLD_INGOT"
	MaterialApple           Material = "APPLE"
	MaterialBread           Material = "BREAD"
	MaterialPaper           Material = "PAPER"
	MaterialBook            Material = "BOOK"
	MaterialArrow           Material = "ARROW"
	MaterialEnderPearl      Material = "ENDER_PEARL"
	MaterialSnowball        Material = "SNOWBALL"
	MaterialEgg             Material = "EGG"
	MaterialEnchantedBook   Material = "ENCHANTED_BOOK"
	MaterialTotemOfUndying  Material = "TOTEM_OF_UNDYING"
	MaterialWoodenSword     Material = "WOODEN_SWORD"
	MaterialStoneSword      Material = "STONE_SWORD"
	MaterialIronSword       Material = "IRON_SWORD"
	MaterialGoldenSword     Material = "GOLDEN_SWORD"
	MaterialDiamondSword    Material = "DIAMOND_SWORD"
	MaterialNetheriteSword  Material = "NETHERITE_SWORD"
	MaterialIronPickaxe     Material = "IRON_PICKAXE"
	MaterialDiamondPickaxe  Material = "DIAMOND_PICKAXE"
	MaterialDiamondAxe      Material = "DIAMOND_AXE"
	MaterialBow             Material = "BOW"
	MaterialCrossbow        Material = "CROSSBOW"
	MaterialTrident         Material = "TRIDENT"
	MaterialShield          Material = "SHIELD"
	MaterialFishingRod      Material = "FISHING_ROD"
	MaterialShears          Material = "SHEARS"
	MaterialElytra          Material = "ELYTRA"
	MaterialDiamondHelmet   Material = "DIAMOND_HELMET"
	MaterialDiamondChest    Material = "DIAMOND_CHESTPLATE"
	MaterialDiamondLeggings Material = "DIAMOND_LEGGINGS"
	MaterialDiamondBoots    Material = "DIAMOND_BOOTS"
	MaterialPlayerHead      Material = "PLAYER_HEAD"
	MaterialSkeletonSkull   Material = "SKELETON_SKULL"
	MaterialZombieHead      Material = "ZOMBIE_HEAD"
)

type materialInfo struct {
	maxStack      int
	maxDurability int
	kind          MetaKind
}

func stackable(size int) materialInfo {
	return materialInfo{maxStack: size, kind: MetaKindBasic}
}

func tool(durability int) materialInfo {
	return materialInfo{maxStack: SingleStackSize, maxDurability: durability, kind: MetaKindDamageable}
}

func skull() materialInfo {
	return materialInfo{maxStack: DefaultMaxStackSize, kind: MetaKindSkull}
}

var materials = map[Material]materialInfo{
	MaterialAir:             {},
	MaterialStone:           stackable(DefaultMaxStackSize),
	MaterialDirt:            stackable(DefaultMaxStackSize),
	MaterialCobblestone:     stackable(DefaultMaxStackSize),
	MaterialOakLog:          stackable(DefaultMaxStackSize),
	MaterialOakPlanks:       stackable(DefaultMaxStackSize),
	MaterialStick:           stackable(DefaultMaxStackSize),
	MaterialDiamond:         stackable(DefaultMaxStackSize),
	MaterialEmerald:         stackable(DefaultMaxStackSize),
	MaterialIronIngot:       stackable(DefaultMaxStackSize),
	MaterialGoldIngot:       stackable(DefaultMaxStackSize),
	MaterialApple:           stackable(DefaultMaxStackSize),
	MaterialBread:           stackable(DefaultMaxStackSize),
	MaterialPaper:           stackable(DefaultMaxStackSize),
	MaterialBook:            stackable(DefaultMaxStackSize),
	MaterialArrow:           stackable(DefaultMaxStackSize),
	MaterialEnderPearl:      stackable(SmallMaxStackSize),
	MaterialSnowball:        stackable(SmallMaxStackSize),
	MaterialEgg:             stackable(SmallMaxStackSize),
	MaterialEnchantedBook:   stackable(SingleStackSize),
	MaterialTotemOfUndying:  stackable(SingleStackSize),
	MaterialWoodenSword:     tool(59),
	MaterialStoneSword:      tool(131),
	MaterialIronSword:       tool(250),
	MaterialGoldenSword:     tool(32),
	MaterialDiamondSword:    tool(1561),
	MaterialNetheriteSword:  tool(2031),
	MaterialIronPickaxe:     tool(250),
	MaterialDiamondPickaxe:  tool(1561),
	MaterialDiamondAxe:      tool(1561),
	MaterialBow:             tool(384),
	MaterialCrossbow:        tool(465),
	MaterialTrident:         tool(250),
	MaterialShield:          tool(336),
	MaterialFishingRod:      tool(64),
	MaterialShears:          tool(238),
	MaterialElytra:          tool(432),
	MaterialDiamondHelmet:   tool(363),
	MaterialDiamondChest:    tool(528),
	MaterialDiamondLeggings: tool(495),
	MaterialDiamondBoots:    tool(429),
	MaterialPlayerHead:      skull(),
	MaterialSkeletonSkull:   skull(),
	MaterialZombieHead:      skull(),
}

// ParseMaterial resolves a material name case-insensitively.
// Spaces and dashes are accepted in place of underscores ("diamond sword").
func ParseMaterial(name string) (Material, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	m := Material(normalized)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Materials returns every known material in name order
func Materials() []Material {
	out := make([]Material, 0, len(materials))
	for m := range materials {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Valid reports whether the material is known
func (m Material) Valid() bool {
	_, ok := materials[m]
	return ok
}

// IsAir reports whether the material represents an empty slot
func (m Material) IsAir() bool {
	return m == MaterialAir
}

func (m Material) MaxStackSize() int {
	return materials[m].maxStack
}

// MaxDurability is zero for materials that cannot be damaged
func (m Material) MaxDurability() int {
	return materials[m].maxDurability
}

func (m Material) MetaKind() MetaKind {
	return materials[m].kind
}

// Title returns the material as a human readable name ("DIAMOND_SWORD" -> "Diamond Sword")
func (m Material) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(string(m)), "_", " "))
}

func (m Material) String() string {
	return string(m)
}
