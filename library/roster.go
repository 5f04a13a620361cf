package library

import "strings"

// AddMember validates the name, assigns a fresh identifier, and prepends the
// member so listings stay newest-first. Returns the stored record.
func (l *Library) AddMember(m Member) (Member, error) {
	if strings.TrimSpace(m.Name) == "" {
		return Member{}, ErrNameRequired
	}
	m.ID = l.ids.NewID()
	l.members = append([]Member{m}, l.members...)
	l.persist()
	return m, nil
}

// UpdateMember replaces the fields of the member matched by id, keeping the
// id itself. An unknown id is a silent no-op.
func (l *Library) UpdateMember(id string, m Member) {
	for i := range l.members {
		if l.members[i].ID == id {
			m.ID = id
			l.members[i] = m
			l.persist()
			return
		}
	}
}

// DeleteMember removes the member and cascades to every transaction
// referencing them. An unknown id is a silent no-op.
func (l *Library) DeleteMember(id string) {
	idx := -1
	for i := range l.members {
		if l.members[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	l.members = append(l.members[:idx], l.members[idx+1:]...)

	kept := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if t.MemberID != id {
			kept = append(kept, t)
		}
	}
	l.transactions = kept
	l.persist()
}

// ListMembers returns members whose name, email, phone, or id contains the
// filter, case-insensitively. An empty filter returns every member.
func (l *Library) ListMembers(filter string) []Member {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]Member, 0, len(l.members))
	for _, m := range l.members {
		if needle == "" || containsFold(needle, m.Name, m.Email, m.Phone, m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// FindMember fetches a single member by id.
func (l *Library) FindMember(id string) (Member, bool) {
	for _, m := range l.members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}
