package sheet

import "fmt"

// IssueKind classifies a problem found by Validate.
type IssueKind int

const (
	// UnknownParent: an inherited name is not in the sheet and is skipped.
	UnknownParent IssueKind = iota
	// SelfParent: a style lists itself as a parent.
	SelfParent
	// NestedParent: a parent inherits from other styles, which are not
	// followed when resolving.
	NestedParent
)

func (k IssueKind) String() string {
	switch k {
	case UnknownParent:
		return "unknown parent"
	case SelfParent:
		return "self parent"
	case NestedParent:
		return "nested parent"
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// Issue is a problem in a sheet that resolution silently tolerates.
type Issue struct {
	Kind   IssueKind
	Style  string
	Parent string
}

func (i Issue) String() string {
	switch i.Kind {
	case UnknownParent:
		return fmt.Sprintf("style %q inherits unknown style %q", i.Style, i.Parent)
	case SelfParent:
		return fmt.Sprintf("style %q inherits itself", i.Style)
	case NestedParent:
		return fmt.Sprintf("style %q inherits %q, whose own parents are not applied", i.Style, i.Parent)
	}
	return i.Kind.String()
}

// Validate reports inherited references that resolution will skip or only
// partly apply, in sheet order.
func (s *Sheet) Validate() []Issue {
	var issues []Issue
	for _, name := range s.Names {
		st := s.Styles[name]
		for _, parent := range st.Inherited {
			if parent == name {
				issues = append(issues, Issue{Kind: SelfParent, Style: name, Parent: parent})
				continue
			}
			p, ok := s.Styles[parent]
			if !ok {
				issues = append(issues, Issue{Kind: UnknownParent, Style: name, Parent: parent})
				continue
			}
			if len(p.Inherited) > 0 {
				issues = append(issues, Issue{Kind: NestedParent, Style: name, Parent: parent})
			}
		}
	}
	return issues
}
