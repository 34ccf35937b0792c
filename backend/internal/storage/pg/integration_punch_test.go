package pg

import (
	"context"
	"sync"
	"testing"
	"time"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePunch(t *testing.T) {
	t.Run("echoes fields in utc", func(t *testing.T) {
		card := createCard(t, "Echo", 1)
		person := createPerson(t, "Echoer")
		loc := time.FixedZone("UTC+3", 3*60*60)
		date := time.Date(2024, 5, 1, 12, 30, 0, 0, loc)

		punch, err := storage.CreatePunch(context.Background(), domain.PunchCreationData{
			CardId: card.Id, PuncherId: person.Id, Date: date, Reason: "latte",
		})
		require.NoError(t, err)
		assert.NotZero(t, punch.Id)
		assert.Equal(t, card.Id, punch.CardId)
		assert.Equal(t, person.Id, punch.PuncherId)
		assert.Equal(t, "latte", punch.Reason)
		assert.True(t, date.Equal(punch.Date))
		assert.Equal(t, time.UTC, punch.Date.Location())

		full, ok := findCard(t, card.Id)
		require.True(t, ok)
		require.Len(t, full.Punches, 1)
		assert.True(t, date.Equal(full.Punches[0].Date), "stored %v, want %v", full.Punches[0].Date, date)
	})

	t.Run("full card rejects punch and inserts nothing", func(t *testing.T) {
		card := createCard(t, "Full", 1)
		person := createPerson(t, "Filler")
		_, err := punchCard(card.Id, person.Id, "first")
		require.NoError(t, err)

		_, err = punchCard(card.Id, person.Id, "second")
		require.ErrorIs(t, err, internal_errors.CapacityExceeded)
		assert.Equal(t, 1, countPunches(t, card.Id))
	})

	t.Run("missing card is not found", func(t *testing.T) {
		person := createPerson(t, "Lost")
		_, err := punchCard(-1, person.Id, "nowhere")
		require.ErrorIs(t, err, internal_errors.NotFound)
	})

	t.Run("missing puncher is not found and inserts nothing", func(t *testing.T) {
		card := createCard(t, "Nobody", 2)
		_, err := punchCard(card.Id, -1, "ghost")
		require.ErrorIs(t, err, internal_errors.NotFound)
		assert.Equal(t, 0, countPunches(t, card.Id))
	})
}

func TestPunchScenario(t *testing.T) {
	coffee := createCard(t, "Coffee", 2)
	alice := createPerson(t, "Alice")

	_, err := punchCard(coffee.Id, alice.Id, "latte")
	require.NoError(t, err)
	_, err = punchCard(coffee.Id, alice.Id, "latte")
	require.NoError(t, err)
	_, err = punchCard(coffee.Id, alice.Id, "latte")
	require.ErrorIs(t, err, internal_errors.CapacityExceeded)

	full, ok := findCard(t, coffee.Id)
	require.True(t, ok)
	assert.Equal(t, "Coffee", full.Title)
	assert.Len(t, full.Punches, 2)
	assert.Equal(t, 0, full.Remaining())
	for _, p := range full.Punches {
		assert.Equal(t, alice, p.Puncher)
	}
}

func TestConcurrentPunchesRespectCapacity(t *testing.T) {
	const capacity = 3
	const workers = 12
	card := createCard(t, "Contended", capacity)
	person := createPerson(t, "Crowd")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := punchCard(card.Id, person.Id, "race")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if assert.ErrorIs(t, err, internal_errors.CapacityExceeded) {
				rejected++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, capacity, created)
	assert.Equal(t, workers-capacity, rejected)
	assert.Equal(t, capacity, countPunches(t, card.Id))
}
