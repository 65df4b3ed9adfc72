package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/su-physio/clinic-scheduler/internal/httperr"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/models"
)

func newRepo() (*BookingKVRepository, kvstore.Store) {
	kv := kvstore.NewMemoryStore()
	return NewBookingKVRepository(kv), kv
}

func TestLoadAll_MissingKeyIsEmptySet(t *testing.T) {
	repo, _ := newRepo()

	records, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadAll_CorruptPayloadResetsToEmpty(t *testing.T) {
	repo, kv := newRepo()
	require.NoError(t, kv.Set(context.Background(), RecordsKey, "{not json"))

	records, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend_RoundTrip(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, models.Booking{ID: 1, Name: "Aung Aung", Phone: "09111111111", Date: "2025-03-10", Time: "09:00", Status: "pending"}))
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 2, Name: "Su Su", Phone: "09222222222", Date: "2025-03-11", Time: "10:00", Status: "pending"}))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Aung Aung", records[0].Name)
	assert.Equal(t, "Su Su", records[1].Name)
}

func TestFindByID(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 42, Name: "Mya Mya", Status: "pending"}))

	rec, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Mya Mya", rec.Name)

	_, err = repo.FindByID(ctx, 99)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestFindByCodeAndPhone_CodeIsCaseInsensitive(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{
		ID: 1, BookingCode: "SU-2025-123456789", Phone: "09111111111", Status: "pending",
	}))

	rec, err := repo.FindByCodeAndPhone(ctx, "su-2025-123456789", "09111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)

	rec, err = repo.FindByCodeAndPhone(ctx, "  SU-2025-123456789  ", "09111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
}

func TestFindByCodeAndPhone_MismatchesAreIndistinguishable(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{
		ID: 1, BookingCode: "SU-2025-123456789", Phone: "09111111111", Status: "pending",
	}))

	_, wrongCode := repo.FindByCodeAndPhone(ctx, "SU-2025-000000000", "09111111111")
	_, wrongPhone := repo.FindByCodeAndPhone(ctx, "SU-2025-123456789", "09999999999")

	assert.True(t, httperr.IsBusiness(wrongCode, "booking_not_found"))
	assert.True(t, httperr.IsBusiness(wrongPhone, "booking_not_found"))
	assert.Equal(t, wrongCode.Error(), wrongPhone.Error())
}

func TestFindByCodeAndPhone_SkipsStaffRecords(t *testing.T) {
	// Staff records have no code; an empty query code must never match them.
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 1, Phone: "09111111111", Status: "pending"}))

	_, err := repo.FindByCodeAndPhone(ctx, "", "09111111111")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestReplace_UpdatesSingleRecord(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 1, Name: "Before", Status: "pending"}))
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 2, Name: "Other", Status: "pending"}))

	require.NoError(t, repo.Replace(ctx, models.Booking{ID: 1, Name: "After", Status: "confirmed"}))

	rec, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "After", rec.Name)
	assert.Equal(t, "confirmed", rec.Status)

	other, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Other", other.Name)
}

func TestReplace_MissingRecord(t *testing.T) {
	repo, _ := newRepo()
	err := repo.Replace(context.Background(), models.Booking{ID: 7})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestRemove(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 1, Status: "pending"}))
	require.NoError(t, repo.Append(ctx, models.Booking{ID: 2, Status: "pending"}))

	require.NoError(t, repo.Remove(ctx, 1))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].ID)

	err = repo.Remove(ctx, 1)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestSaveAll_NilBecomesEmptyArray(t *testing.T) {
	repo, kv := newRepo()
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, nil))

	raw, err := kv.Get(ctx, RecordsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}
