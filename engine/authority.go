// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

// Authority is the per-ballot role check: a fixed owner plus a mutable admin
// set. The owner is always an admin and can never be demoted. Authority has
// no lock of its own; the owning Ballot serializes access.
type Authority struct {
	owner  string
	admins map[string]struct{}
}

// NewAuthority creates an authority owned by owner, with owner as the only
// initial admin.
func NewAuthority(owner string) *Authority {
	return &Authority{
		owner:  owner,
		admins: map[string]struct{}{owner: {}},
	}
}

func (a *Authority) Owner() string { return a.owner }

// IsAdmin reports whether addr is the owner or a member of the admin set.
func (a *Authority) IsAdmin(addr string) bool {
	if addr == a.owner {
		return true
	}
	_, ok := a.admins[addr]
	return ok
}

// AddAdmin grants target admin rights. Only the owner may grant.
func (a *Authority) AddAdmin(caller, target string) error {
	if caller != a.owner {
		return ErrNotOwner
	}
	if _, ok := a.admins[target]; ok {
		return ErrAlreadyAdmin
	}
	a.admins[target] = struct{}{}
	return nil
}

// RemoveAdmin revokes target's admin rights. Only the owner may revoke, and
// the owner itself can never be removed.
func (a *Authority) RemoveAdmin(caller, target string) error {
	if caller != a.owner {
		return ErrNotOwner
	}
	if target == a.owner {
		return ErrOwnerDemotion
	}
	if _, ok := a.admins[target]; !ok {
		return ErrNotAnAdmin
	}
	delete(a.admins, target)
	return nil
}

// requireAdmin guards every admin-gated operation.
func (a *Authority) requireAdmin(caller string) error {
	if !a.IsAdmin(caller) {
		return ErrNotAdmin
	}
	return nil
}
