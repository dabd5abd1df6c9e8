package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records appended payloads and can be told to fail.
type fakeGateway struct {
	records []Record
	err     error
}

func (f *fakeGateway) Append(_ context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func fillValidDraft(c *Controller) {
	c.SetName("Anna Rossi")
	c.SetPhone("+39 055 1234567")
	c.SetPartySize("4")
	c.SetConsent(true)
	c.SetDateTime("2026-09-12T14:00")
}

func TestSubmit_HappyPath(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)
	form.SetClock(func() time.Time { return time.UnixMilli(1750000000000) })
	fillValidDraft(form)
	form.SetNotes("window table please")

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleSuccess, state)
	require.Len(t, gw.records, 1)

	rec := gw.records[0]
	assert.Equal(t, "Anna Rossi", rec.Name)
	assert.Equal(t, "4", rec.PartySize)
	assert.Equal(t, "2026-09-12", rec.Date)
	assert.Equal(t, "14:00", rec.Time)
	assert.Equal(t, "2026-09-12T14:00", rec.DateTimeCombined)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, int64(1750000000000), rec.CreatedAt)
	assert.True(t, rec.ConsentGiven)

	// Success clears the draft and every field error.
	assert.Equal(t, Draft{}, form.Draft())
	assert.Empty(t, form.FieldErrors())
}

func TestSubmit_MissingFieldsReported(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleIdle, state)
	errs := form.FieldErrors()
	assert.Contains(t, errs, FieldName)
	assert.Contains(t, errs, FieldPhone)
	assert.Contains(t, errs, FieldParty)
	assert.Contains(t, errs, FieldDateTime)
	// Consent is the last gate and must not be reported while other
	// fields are still invalid.
	assert.NotContains(t, errs, FieldConsent)
	assert.Empty(t, gw.records)
}

func TestSubmit_ConsentIsLastGate(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)
	fillValidDraft(form)
	form.SetConsent(false)

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleIdle, state)
	assert.Equal(t, map[string]string{FieldConsent: "consent is required"}, form.FieldErrors())
	assert.Empty(t, gw.records, "gateway must not be reached without consent")
}

func TestSubmit_GatewayFailureKeepsDraft(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	form := NewController(gw)
	fillValidDraft(form)

	state, err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, LifecycleError, state)
	assert.Equal(t, "Anna Rossi", form.Draft().Name, "draft survives a failed submit")
	assert.Equal(t, "2026-09-12T14:00", form.Draft().SelectedDateTime)
}

func TestSubmit_RetryAfterFailureSucceeds(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	form := NewController(gw)
	fillValidDraft(form)

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	gw.err = nil
	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleSuccess, state)
	require.Len(t, gw.records, 1)
}

func TestSetPhone_InlineLetterCheck(t *testing.T) {
	form := NewController(&fakeGateway{})

	form.SetPhone("abc123")
	assert.Contains(t, form.FieldErrors(), FieldPhone)

	form.SetPhone("0551234567")
	assert.NotContains(t, form.FieldErrors(), FieldPhone)
}

func TestSubmit_PhoneTooFewDigits(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)
	fillValidDraft(form)
	form.SetPhone("12-34")

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleIdle, state)
	assert.Contains(t, form.FieldErrors(), FieldPhone)
	assert.Empty(t, gw.records)
}

func TestSubmit_PhoneAcceptsSeparators(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)
	fillValidDraft(form)
	form.SetPhone("+39 (055) 123-456")

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleSuccess, state)
}

func TestSetPartySize_AdvisoryLatch(t *testing.T) {
	form := NewController(&fakeGateway{})

	assert.False(t, form.SetPartySize("9"))
	assert.True(t, form.SetPartySize("10"), "crossing the threshold fires once")
	assert.False(t, form.SetPartySize("11"), "staying above stays quiet")
	assert.False(t, form.SetPartySize("12"))
	assert.False(t, form.SetPartySize("3"), "dropping below resets the latch")
	assert.True(t, form.SetPartySize("15"), "re-crossing fires again")
}

func TestSetPartySize_UnparseableNeverAdvises(t *testing.T) {
	form := NewController(&fakeGateway{})

	assert.False(t, form.SetPartySize("ten"))
	assert.False(t, form.SetPartySize(""))
}

func TestIsLargeParty(t *testing.T) {
	assert.False(t, IsLargeParty("9"))
	assert.True(t, IsLargeParty("10"))
	assert.True(t, IsLargeParty(" 12 "))
	assert.False(t, IsLargeParty("abc"))
	assert.False(t, IsLargeParty(""))
}

func TestSubmit_MalformedDateTimeRejected(t *testing.T) {
	gw := &fakeGateway{}
	form := NewController(gw)
	fillValidDraft(form)
	form.SetDateTime("2026-09-12 14:00") // missing the T separator

	state, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LifecycleIdle, state)
	assert.Contains(t, form.FieldErrors(), FieldDateTime)
	assert.Empty(t, gw.records)
}
