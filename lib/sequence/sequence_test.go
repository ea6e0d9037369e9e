package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"qms-backend/models"
)

type fakeSeqStore struct {
	maxNumber string
	taken     map[string]bool
}

func (f *fakeSeqStore) MaxNumber(tableName, pattern string) (string, error) {
	return f.maxNumber, nil
}

func (f *fakeSeqStore) Exists(tableName, number string) (bool, error) {
	return f.taken[number], nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestSequence(t *testing.T) {
	t.Run(`first number of year check`, func(t *testing.T) {
		store := &fakeSeqStore{taken: map[string]bool{}}
		seq := NewWithStore(store, fixedNow)

		number, err := seq.Next(models.NumberFamilyCAR)
		require.Nil(t, err)
		require.Equal(t, "C25001", number)
	})

	t.Run(`next after max check`, func(t *testing.T) {
		store := &fakeSeqStore{maxNumber: "C25007", taken: map[string]bool{}}
		seq := NewWithStore(store, fixedNow)

		number, err := seq.Next(models.NumberFamilyCAR)
		require.Nil(t, err)
		require.Equal(t, "C25008", number)
	})

	t.Run(`collision retry check`, func(t *testing.T) {
		// номер за максимумом уже занят параллельным создателем
		store := &fakeSeqStore{
			maxNumber: "C25007",
			taken:     map[string]bool{"C25008": true, "C25009": true},
		}
		seq := NewWithStore(store, fixedNow)

		number, err := seq.Next(models.NumberFamilyCAR)
		require.Nil(t, err)
		require.Equal(t, "C25010", number)
	})

	t.Run(`dashed style check`, func(t *testing.T) {
		store := &fakeSeqStore{maxNumber: "COMP-25-0012", taken: map[string]bool{}}
		seq := NewWithStore(store, fixedNow)

		number, err := seq.Next(models.NumberFamilyComplaint)
		require.Nil(t, err)
		require.Equal(t, "COMP-25-0013", number)
	})

	t.Run(`unparsable max restarts numbering check`, func(t *testing.T) {
		store := &fakeSeqStore{maxNumber: "мусор", taken: map[string]bool{}}
		seq := NewWithStore(store, fixedNow)

		number, err := seq.Next(models.NumberFamilyIO)
		require.Nil(t, err)
		require.Equal(t, "IO25001", number)
	})

	t.Run(`io kind family check`, func(t *testing.T) {
		require.Equal(t, models.NumberFamilyIO, models.TicketNumberFamily(models.TicketKindIO))
		require.Equal(t, models.NumberFamilyCAR, models.TicketNumberFamily(models.TicketKindCAR))
	})
}
