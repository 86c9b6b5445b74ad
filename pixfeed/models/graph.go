package models

import (
	"fmt"
	"strings"
)

// RoleType describes how a child relates to its parent. Values combine as a
// bit set.
type RoleType uint32

const (
	RoleSubjectOf RoleType = 1 << iota
	RoleAuthorOf
	RoleReasonFor
	RoleOlderVersionOf
	RolePlaceOfRecord
	RoleResponsibleFor
	RoleReplacementOf
	RoleFilterOf
	RoleRepresentitiveOf
	RoleComponentOf
)

var roleNames = []struct {
	role RoleType
	name string
}{
	{RoleSubjectOf, "SubjectOf"},
	{RoleAuthorOf, "AuthorOf"},
	{RoleReasonFor, "ReasonFor"},
	{RoleOlderVersionOf, "OlderVersionOf"},
	{RolePlaceOfRecord, "PlaceOfRecord"},
	{RoleResponsibleFor, "ResponsibleFor"},
	{RoleReplacementOf, "ReplacementOf"},
	{RoleFilterOf, "FilterOf"},
	{RoleRepresentitiveOf, "RepresentitiveOf"},
	{RoleComponentOf, "ComponentOf"},
}

// Has reports whether every flag in other is set.
func (r RoleType) Has(other RoleType) bool {
	return other != 0 && r&other == other
}

func (r RoleType) String() string {
	var names []string
	rest := r
	for _, rn := range roleNames {
		if r&rn.role != 0 {
			names = append(names, rn.name)
			rest &^= rn.role
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

func (r RoleType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Component is any node that can be attached to the registration graph.
type Component interface {
	ComponentType() string
}

// Edge links an owning node to a child.
type Edge struct {
	Name     string             `json:"name"`
	Source   string             `json:"source"`
	Kind     string             `json:"kind"`
	Roles    RoleType           `json:"roles"`
	AltIDs   []DomainIdentifier `json:"altIds,omitempty"`
	Symbolic bool               `json:"symbolic,omitempty"`
	Target   Component          `json:"target"`
}

// Container is embedded by nodes that own children.
type Container struct {
	ID    string  `json:"id"`
	Edges []*Edge `json:"edges,omitempty"`
}

// Attach adds child under name and returns the new edge.
func (c *Container) Attach(name string, child Component, roles RoleType, altIDs []DomainIdentifier) *Edge {
	e := &Edge{
		Name:   name,
		Source: c.ID,
		Kind:   child.ComponentType(),
		Roles:  roles,
		AltIDs: altIDs,
		Target: child,
	}
	c.Edges = append(c.Edges, e)
	return e
}

// Edge returns the first edge with the given name.
func (c *Container) Edge(name string) (*Edge, bool) {
	for _, e := range c.Edges {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Children returns the targets of non-symbolic edges carrying role, in
// attachment order.
func (c *Container) Children(role RoleType) []Component {
	var out []Component
	for _, e := range c.Edges {
		if !e.Symbolic && e.Roles.Has(role) {
			out = append(out, e.Target)
		}
	}
	return out
}
