package candidatehandler

import (
	"testing"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestCanMove(t *testing.T) {
	t.Run(`этап без активностей не блокирует перевод`, func(t *testing.T) {
		require.True(t, CanMove(nil))
		require.True(t, CanMove([]dbmodels.CandidateActivity{}))
	})

	t.Run(`все активности завершены - перевод разрешен`, func(t *testing.T) {
		activities := []dbmodels.CandidateActivity{
			{Status: models.ActivityStatusCompleted},
			{Status: models.ActivityStatusCompleted},
		}
		require.True(t, CanMove(activities))
	})

	t.Run(`незавершенная активность блокирует перевод`, func(t *testing.T) {
		activities := []dbmodels.CandidateActivity{
			{Status: models.ActivityStatusCompleted},
			{Status: models.ActivityStatusInProgress},
		}
		require.False(t, CanMove(activities))

		activities = []dbmodels.CandidateActivity{
			{Status: models.ActivityStatusCancelled},
		}
		require.False(t, CanMove(activities))
	})
}
