package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ItemFlag hides a part of an item's tooltip
type ItemFlag uint8

const (
	FlagHideEnchants ItemFlag = iota
	FlagHideAttributes
	FlagHideUnbreakable
	FlagHideDestroys
	FlagHidePlacedOn
	FlagHideAdditionalTooltip
	FlagHideDye
	FlagHideArmorTrim

	flagCount
)

var flagNames = [flagCount]string{
	FlagHideEnchants:          "HIDE_ENCHANTS",
	FlagHideAttributes:        "HIDE_ATTRIBUTES",
	FlagHideUnbreakable:       "HIDE_UNBREAKABLE",
	FlagHideDestroys:          "HIDE_DESTROYS",
	FlagHidePlacedOn:          "HIDE_PLACED_ON",
	FlagHideAdditionalTooltip: "HIDE_ADDITIONAL_TOOLTIP",
	FlagHideDye:               "HIDE_DYE",
	FlagHideArmorTrim:         "HIDE_ARMOR_TRIM",
}

// AllItemFlags returns every flag in declaration order
func AllItemFlags() []ItemFlag {
	out := make([]ItemFlag, flagCount)
	for i := range out {
		out[i] = ItemFlag(i)
	}
	return out
}

// ParseItemFlag resolves a flag by name, case-insensitively
func ParseItemFlag(name string) (ItemFlag, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range flagNames {
		if n == upper {
			return ItemFlag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}

func (f ItemFlag) String() string {
	if f >= flagCount {
		return fmt.Sprintf("ItemFlag(%d)", uint8(f))
	}
	return flagNames[f]
}

// ItemFlags is the set of flags applied to an item meta
type ItemFlags uint16

// FlagSet builds a set from the given flags
func FlagSet(flags ...ItemFlag) ItemFlags {
	var s ItemFlags
	return s.With(flags...)
}

func (s ItemFlags) Has(f ItemFlag) bool {
	return s&(1<<f) != 0
}

// With returns the set with the given flags added
func (s ItemFlags) With(flags ...ItemFlag) ItemFlags {
	for _, f := range flags {
		if f < flagCount {
			s |= 1 << f
		}
	}
	return s
}

// Without returns the set with the given flags removed
func (s ItemFlags) Without(flags ...ItemFlag) ItemFlags {
	for _, f := range flags {
		s &^= 1 << f
	}
	return s
}

// List returns the flags in declaration order
func (s ItemFlags) List() []ItemFlag {
	var out []ItemFlag
	for i := ItemFlag(0); i < flagCount; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

func (s ItemFlags) Len() int {
	return len(s.List())
}

// MarshalJSON encodes the set as a list of flag names
func (s ItemFlags) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, flagCount)
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return json.Marshal(names)
}

func (s *ItemFlags) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var set ItemFlags
	for _, n := range names {
		f, err := ParseItemFlag(n)
		if err != nil {
			return err
		}
		set = set.With(f)
	}
	*s = set
	return nil
}
