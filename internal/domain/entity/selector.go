package entity

import "fmt"

// ElementSelector targets an element either by a literal locator or by a snapshot index.
type ElementSelector struct {
	Locator string
	Index   *int
}

func SelectByLocator(locator string) ElementSelector {
	return ElementSelector{Locator: locator}
}

func SelectByIndex(index int) ElementSelector {
	return ElementSelector{Index: &index}
}

func (s ElementSelector) IsIndex() bool {
	return s.Index != nil
}

func (s ElementSelector) String() string {
	if s.Index != nil {
		return fmt.Sprintf("index %d", *s.Index)
	}
	return s.Locator
}
