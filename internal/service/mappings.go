package service

import "github.com/omarshaarawi/sleeperbot/internal/models"

const unknownOwner = "Unknown"

// UserNames maps league user ids to display names.
func UserNames(users []models.LeagueUser) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names
}

// RosterOwners maps roster ids to the owner's display name, or "Unknown".
func RosterOwners(rosters []models.Roster, userNames map[string]string) map[int]string {
	owners := make(map[int]string, len(rosters))
	for _, r := range rosters {
		name, ok := userNames[r.OwnerID]
		if !ok {
			name = unknownOwner
		}
		owners[r.ID] = name
	}
	return owners
}

func RostersByID(rosters []models.Roster) map[int]models.Roster {
	byID := make(map[int]models.Roster, len(rosters))
	for _, r := range rosters {
		byID[r.ID] = r
	}
	return byID
}

func ownerName(owners map[int]string, rosterID int) string {
	if name, ok := owners[rosterID]; ok {
		return name
	}
	return unknownOwner
}
