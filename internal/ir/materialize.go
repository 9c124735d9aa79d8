package ir

// Materialize decodes the whole graph and returns the first error found.
// Fragments are materialized once each through the fragment table; spreads
// are resolved but not followed, so spread cycles cannot recurse.
func (r *CompilationResult) Materialize() error {
	if _, err := r.ReferencedTypes(); err != nil {
		return err
	}
	ops, err := r.Operations()
	if err != nil {
		return err
	}
	for _, op := range ops {
		if err := materializeOperation(op); err != nil {
			return err
		}
	}
	frags, err := r.Fragments()
	if err != nil {
		return err
	}
	for _, f := range frags {
		if err := materializeFragment(f); err != nil {
			return err
		}
	}
	// Building the table checks fragment names for duplicates.
	_, err = r.fragmentTable()
	return err
}

func materializeOperation(op *OperationDefinition) error {
	steps := []func() error{
		func() error { _, err := op.Name(); return err },
		func() error { _, err := op.OperationType(); return err },
		func() error { _, err := op.RootType(); return err },
		func() error { _, err := op.Source(); return err },
		func() error { _, err := op.FilePath(); return err },
		func() error {
			vars, err := op.Variables()
			if err != nil {
				return err
			}
			for _, v := range vars {
				if _, err := v.Name(); err != nil {
					return err
				}
				if _, err := v.Type(); err != nil {
					return err
				}
				if _, err := v.DefaultValue(); err != nil {
					return err
				}
			}
			return nil
		},
		func() error {
			ss, err := op.SelectionSet()
			if err != nil {
				return err
			}
			return materializeSelectionSet(ss)
		},
	}
	return runSteps(steps)
}

func materializeFragment(f *FragmentDefinition) error {
	return runSteps([]func() error{
		func() error { _, err := f.Name(); return err },
		func() error { _, err := f.Type(); return err },
		func() error { _, err := f.Source(); return err },
		func() error { _, err := f.FilePath(); return err },
		func() error {
			ss, err := f.SelectionSet()
			if err != nil {
				return err
			}
			return materializeSelectionSet(ss)
		},
	})
}

func materializeSelectionSet(set *SelectionSet) error {
	if _, err := set.ParentType(); err != nil {
		return err
	}
	return Walk(set, func(sel Selection) error {
		switch s := sel.(type) {
		case *Field:
			return materializeField(s)
		case *InlineFragment:
			if _, err := s.TypeCondition(); err != nil {
				return err
			}
			ss, err := s.SelectionSet()
			if err != nil {
				return err
			}
			_, err = ss.ParentType()
			return err
		case *FragmentSpread:
			_, err := s.Fragment()
			return err
		}
		return nil
	})
}

func materializeField(f *Field) error {
	return runSteps([]func() error{
		func() error { _, err := f.ResponseKey(); return err },
		func() error { _, err := f.Type(); return err },
		func() error { _, err := f.IsDeprecated(); return err },
		func() error { _, err := f.Description(); return err },
		func() error {
			args, err := f.Arguments()
			if err != nil {
				return err
			}
			for _, a := range args {
				if _, err := a.Name(); err != nil {
					return err
				}
				if _, err := a.Value(); err != nil {
					return err
				}
			}
			return nil
		},
		func() error {
			ss, err := f.SelectionSet()
			if err != nil || ss == nil {
				return err
			}
			_, err = ss.ParentType()
			return err
		},
	})
}

func runSteps(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
