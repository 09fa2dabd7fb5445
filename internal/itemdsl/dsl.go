package itemdsl

import "github.com/osse101/itemforge/internal/domain"

// CreateItem builds a new stack of material after applying block
func CreateItem(material domain.Material, block func(*Item)) (*domain.ItemStack, error) {
	return run(Options{Material: material}, block)
}

// CopyItem builds an edited copy of stack; stack is left unchanged
func CopyItem(stack *domain.ItemStack, block func(*Item)) (*domain.ItemStack, error) {
	return run(Options{Item: stack}, block)
}

// MutateItem applies block to stack in place and returns stack
func MutateItem(stack *domain.ItemStack, block func(*Item)) (*domain.ItemStack, error) {
	return run(Options{Item: stack, Mutate: true}, block)
}

func run(opts Options, block func(*Item)) (*domain.ItemStack, error) {
	it, err := New(opts)
	if err != nil {
		return nil, err
	}
	if block != nil {
		block(it)
	}
	return it.Build(), nil
}
