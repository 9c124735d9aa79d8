package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// IdentifierScheme names an operation identifier algorithm. The identifier is
// used as a persisted-query key downstream, so a scheme never changes once
// released.
type IdentifierScheme string

// IdentifierSHA256 hashes the effective operation text with SHA-256 and
// renders it as 64 lowercase hex characters.
const IdentifierSHA256 IdentifierScheme = "sha256"

// Identifier returns the SHA-256 identifier of an effective operation text.
func Identifier(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// EffectiveSource is the text the operation identifier is computed from: the
// operation's source followed by the source of every referenced fragment in
// name order, each preceded by a newline.
func (op *OperationDefinition) EffectiveSource() (string, error) {
	src, err := op.Source()
	if err != nil {
		return "", err
	}
	frags, err := op.ReferencedFragments()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(src)
	for _, f := range frags {
		fs, err := f.Source()
		if err != nil {
			return "", err
		}
		b.WriteByte('\n')
		b.WriteString(fs)
	}
	return b.String(), nil
}

// OperationIdentifierWithScheme computes the identifier under an explicit
// scheme. Unknown schemes fail with an error wrapping ErrUnimplemented.
func (op *OperationDefinition) OperationIdentifierWithScheme(scheme IdentifierScheme) (string, error) {
	switch scheme {
	case IdentifierSHA256, "":
		return op.OperationIdentifier()
	}
	return "", fmt.Errorf("operation identifier scheme %q: %w", scheme, ErrUnimplemented)
}

// fragmentClosure collects the fragments transitively reachable from set. The
// visited set is keyed by fragment name, so spread cycles terminate.
func fragmentClosure(set *SelectionSet) ([]*FragmentDefinition, error) {
	visited := map[string]*FragmentDefinition{}
	queue := []*SelectionSet{set}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		err := Walk(cur, func(sel Selection) error {
			spread, ok := sel.(*FragmentSpread)
			if !ok {
				return nil
			}
			name, err := spread.FragmentName()
			if err != nil {
				return err
			}
			if _, seen := visited[name]; seen {
				return nil
			}
			frag, err := spread.Fragment()
			if err != nil {
				return err
			}
			visited[name] = frag
			ss, err := frag.SelectionSet()
			if err != nil {
				return err
			}
			queue = append(queue, ss)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(visited))
	for name := range visited {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*FragmentDefinition, 0, len(names))
	for _, name := range names {
		out = append(out, visited[name])
	}
	return out, nil
}
