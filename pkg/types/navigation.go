package types

import (
	"encoding/json"
	"fmt"
)

type Section string

const (
	SectionMain   Section = "main"
	SectionBottom Section = "bottom"
)

// NavTarget is what activating a navigation item does: either navigate to a
// path or issue a named command (e.g. logout). Exactly one variant applies
// per item.
type NavTarget interface {
	isNavTarget()
}

type NavigationLink struct {
	Path string
}

func (NavigationLink) isNavTarget() {}

type NavigationCommand struct {
	Command string
}

func (NavigationCommand) isNavTarget() {}

type NavigationItem struct {
	Name    string
	Icon    string
	Section Section
	Target  NavTarget
}

// Path returns the link destination when the item is a navigation link.
func (n NavigationItem) Path() (string, bool) {
	link, ok := n.Target.(NavigationLink)
	if !ok {
		return "", false
	}
	return link.Path, true
}

func (n NavigationItem) MarshalJSON() ([]byte, error) {
	out := struct {
		Name    string  `json:"name"`
		Icon    string  `json:"icon"`
		Section Section `json:"section"`
		Path    string  `json:"path,omitempty"`
		Command string  `json:"command,omitempty"`
	}{
		Name:    n.Name,
		Icon:    n.Icon,
		Section: n.Section,
	}
	switch t := n.Target.(type) {
	case NavigationLink:
		out.Path = t.Path
	case NavigationCommand:
		out.Command = t.Command
	default:
		return nil, fmt.Errorf("navigation item %q has no target", n.Name)
	}
	return json.Marshal(out)
}

// NavigationList is an ordered, role-specific set of navigation items.
// DefaultPath designates the item that counts as active on the root path.
type NavigationList struct {
	DefaultPath string
	Items       []NavigationItem
}

// Validate checks list-level invariants: unique item names and a target on
// every item.
func (l NavigationList) Validate() error {
	seen := make(map[string]struct{}, len(l.Items))
	for _, item := range l.Items {
		if item.Name == "" {
			return fmt.Errorf("navigation item with empty name")
		}
		if _, dup := seen[item.Name]; dup {
			return fmt.Errorf("duplicate navigation item name %q", item.Name)
		}
		seen[item.Name] = struct{}{}
		if item.Target == nil {
			return fmt.Errorf("navigation item %q has no target", item.Name)
		}
	}
	return nil
}

// Resolve returns the name of the item active for the given location path.
// The root path activates the item at DefaultPath; otherwise the first item
// whose link path exactly matches wins. Command items never match. When no
// item matches, ok is false and nothing is active.
func (l NavigationList) Resolve(current string) (string, bool) {
	want := current
	if current == "/" {
		want = l.DefaultPath
	}
	for _, item := range l.Items {
		path, ok := item.Path()
		if !ok {
			continue
		}
		if path == want {
			return item.Name, true
		}
	}
	return "", false
}

// Section returns the items belonging to the given section, in order.
func (l NavigationList) Section(s Section) []NavigationItem {
	out := make([]NavigationItem, 0, len(l.Items))
	for _, item := range l.Items {
		if item.Section == s {
			out = append(out, item)
		}
	}
	return out
}
