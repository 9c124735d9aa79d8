package ir

// FragmentDefinition is a named fragment. It is decoded once and shared by
// every spread that references it.
type FragmentDefinition struct {
	object

	name         lazy[string]
	typ          lazy[*NamedType]
	selectionSet lazy[*SelectionSet]
	source       lazy[string]
	filePath     lazy[string]
}

func newFragmentDefinition(root *CompilationResult, o object) *FragmentDefinition {
	f := &FragmentDefinition{object: o}
	f.name = newLazy(func() (string, error) { return o.requireString("name") })
	f.typ = newLazy(func() (*NamedType, error) { return root.decodeCompositeType(o, "type") })
	f.selectionSet = newLazy(func() (*SelectionSet, error) {
		ss, err := o.requireObject("selectionSet")
		if err != nil {
			return nil, err
		}
		return newSelectionSet(root, ss), nil
	})
	f.source = newLazy(func() (string, error) { return o.requireString("source") })
	f.filePath = newLazy(func() (string, error) { return o.requireString("filePath") })
	return f
}

func (f *FragmentDefinition) Name() (string, error) { return f.name() }

// Type is the fragment's type condition.
func (f *FragmentDefinition) Type() (*NamedType, error) { return f.typ() }
func (f *FragmentDefinition) SelectionSet() (*SelectionSet, error) { return f.selectionSet() }
func (f *FragmentDefinition) Source() (string, error) { return f.source() }
func (f *FragmentDefinition) FilePath() (string, error) { return f.filePath() }

// Path is the location of the fragment in the dynamic tree.
func (f *FragmentDefinition) Path() string { return f.path }
