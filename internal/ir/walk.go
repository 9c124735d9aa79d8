package ir

import "fmt"

// Walk calls visit for every selection under set in depth-first order. It
// descends into field and inline fragment selection sets but does not follow
// fragment spreads, which are references; visit sees the spread itself.
func Walk(set *SelectionSet, visit func(Selection) error) error {
	if set == nil {
		return nil
	}
	sels, err := set.Selections()
	if err != nil {
		return err
	}
	for _, sel := range sels {
		if err := visit(sel); err != nil {
			return err
		}
		var child *SelectionSet
		switch s := sel.(type) {
		case *Field:
			child, err = s.SelectionSet()
		case *InlineFragment:
			child, err = s.SelectionSet()
		case *FragmentSpread:
			continue
		default:
			panic(fmt.Sprintf("ir: unhandled selection %T", sel))
		}
		if err != nil {
			return err
		}
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}
