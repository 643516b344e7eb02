package activity

import (
	"github.com/samber/lo"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

// ToDomainActivity converts a wire activity to the domain entity. A missing
// participants array becomes an empty roster.
func ToDomainActivity(name string, dto *ActivityDTO) activity.Activity {
	participants := make([]string, len(dto.Participants))
	copy(participants, dto.Participants)

	return activity.Activity{
		Name:            name,
		Description:     dto.Description,
		Schedule:        dto.Schedule,
		MaxParticipants: dto.MaxParticipants,
		Participants:    participants,
	}
}

// ToDomainActivities converts the wire roster to domain activities keyed by name.
func ToDomainActivities(dto ActivityListDTO) map[string]activity.Activity {
	return lo.MapValues(dto, func(a ActivityDTO, name string) activity.Activity {
		return ToDomainActivity(name, &a)
	})
}
