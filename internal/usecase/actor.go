package usecase

import (
	"umrah-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a service method.
type Actor struct {
	ID   uuid.UUID
	Role entity.UserRole
}

// Anonymous is used for public endpoints.
var Anonymous = Actor{}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// parseID turns a path id into a uuid, reporting notFound when it is malformed.
func parseID(id string, notFound error) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, notFound
	}
	return parsed, nil
}

func parseIDs(ids []string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, u)
	}
	return parsed, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
