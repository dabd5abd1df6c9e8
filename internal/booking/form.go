// Package booking owns the reservation form: the mutable draft the guest
// fills in, the validation rules, the group-size advisory and the
// submission lifecycle.  The persistence boundary is the Gateway interface;
// everything else is in-process and synchronous.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
)

// Lifecycle is the single submission state the form is in at any moment.
// It drives which view the hosting surface shows.
type Lifecycle string

const (
	LifecycleIdle       Lifecycle = "idle"
	LifecycleSubmitting Lifecycle = "submitting"
	LifecycleSuccess    Lifecycle = "success"
	LifecycleError      Lifecycle = "error"
)

// Draft is the in-progress form data.  PartySize stays the string the guest
// typed; it is only parsed where a number is needed.  SelectedDateTime is
// the "YYYY-MM-DDTHH:MM" value committed by the picker, or empty.
type Draft struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	PartySize        string `json:"party_size"`
	Notes            string `json:"notes"`
	ConsentGiven     bool   `json:"consent_given"`
	SelectedDateTime string `json:"selected_date_time"`
}

// Record is the immutable payload handed to the persistence boundary at
// submission time.  It is created once and never mutated by this package;
// later status transitions are an admin-side concern.
type Record struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	PartySize        string `json:"party_size"`
	Notes            string `json:"notes"`
	ConsentGiven     bool   `json:"consent_given"`
	Date             string `json:"date"` // "YYYY-MM-DD"
	Time             string `json:"time"` // "HH:MM"
	DateTimeCombined string `json:"date_time_combined"`
	CreatedAt        int64  `json:"created_at"` // epoch milliseconds
	Status           string `json:"status"`     // always "pending" at creation
}

// StatusPending is the status every freshly submitted reservation carries.
const StatusPending = "pending"

// Gateway is the append-only store boundary.  The form never reads back or
// updates what it appended.
type Gateway interface {
	Append(ctx context.Context, rec Record) error
}

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still outstanding.  The host must treat the submit control
// as disabled during that window.
var ErrSubmitInFlight = errors.New("submission already in progress")

// Field error keys, stable for the API surface.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldParty    = "party_size"
	FieldDateTime = "selected_date_time"
	FieldConsent  = "consent"
)

const minPhoneDigits = 6

// Controller drives one form instance: a draft, its field errors and the
// submission lifecycle.  Each mounted widget owns its own Controller; there
// is no shared state between instances.
type Controller struct {
	draft     Draft
	lifecycle Lifecycle
	errors    map[string]string
	advisor   *GroupSizeAdvisor
	gateway   Gateway
	now       func() time.Time
}

// NewController wires a controller to its gateway.  The clock is
// time.Now; tests swap it via SetClock.
func NewController(gw Gateway) *Controller {
	return &Controller{
		lifecycle: LifecycleIdle,
		errors:    map[string]string{},
		advisor:   NewGroupSizeAdvisor(DefaultGroupThreshold),
		gateway:   gw,
		now:       time.Now,
	}
}

// SetClock overrides the timestamp source used for Record.CreatedAt.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft { return c.draft }

// Lifecycle returns the current submission state.
func (c *Controller) Lifecycle() Lifecycle { return c.lifecycle }

// FieldErrors returns the current per-field error messages.
func (c *Controller) FieldErrors() map[string]string {
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetName updates the name field.
func (c *Controller) SetName(v string) {
	c.draft.Name = v
	delete(c.errors, FieldName)
}

// SetPhone updates the phone field and runs the inline check: alphabetic
// characters raise a field error immediately, while typing.
func (c *Controller) SetPhone(v string) {
	c.draft.Phone = v
	if containsAlpha(v) {
		c.errors[FieldPhone] = "phone must not contain letters"
	} else {
		delete(c.errors, FieldPhone)
	}
}

// SetPartySize updates the party-size field and evaluates the group
// advisory.  It returns true when the advisory should be raised now, which
// happens once per crossing from below to at-or-above the threshold.
func (c *Controller) SetPartySize(v string) bool {
	c.draft.PartySize = v
	delete(c.errors, FieldParty)
	return c.advisor.Evaluate(v)
}

// SetNotes updates the free-text notes field.  Notes are optional and
// never validated.
func (c *Controller) SetNotes(v string) { c.draft.Notes = v }

// SetConsent records the consent checkbox.
func (c *Controller) SetConsent(v bool) {
	c.draft.ConsentGiven = v
	if v {
		delete(c.errors, FieldConsent)
	}
}

// SetDateTime stores the value committed by the picker.  The hand-off is
// synchronous: validation sees the new value on the very next call.
func (c *Controller) SetDateTime(v string) {
	c.draft.SelectedDateTime = v
	delete(c.errors, FieldDateTime)
}

// validate runs every submit-time rule except consent and fills the field
// error map.  Required fields and phone shape are checked first; consent is
// always the last gate and is handled separately in Submit.
func (c *Controller) validate() {
	if strings.TrimSpace(c.draft.Name) == "" {
		c.errors[FieldName] = "name is required"
	}
	if strings.TrimSpace(c.draft.PartySize) == "" {
		c.errors[FieldParty] = "party size is required"
	}
	if c.draft.SelectedDateTime == "" {
		c.errors[FieldDateTime] = "date and time are required"
	}
	phone := strings.TrimSpace(c.draft.Phone)
	switch {
	case phone == "":
		c.errors[FieldPhone] = "phone is required"
	case containsAlpha(phone):
		c.errors[FieldPhone] = "phone must not contain letters"
	case countDigits(phone) < minPhoneDigits:
		c.errors[FieldPhone] = "phone must contain at least 6 digits"
	default:
		delete(c.errors, FieldPhone)
	}
}

// Submit runs full validation and, when everything passes, appends the
// assembled record through the gateway.  Any input error keeps the
// lifecycle at idle with the draft untouched.  A gateway failure moves to
// error and preserves the draft so the guest can retry; success clears the
// whole draft and every field error.
func (c *Controller) Submit(ctx context.Context) (Lifecycle, error) {
	if c.lifecycle == LifecycleSubmitting {
		return c.lifecycle, ErrSubmitInFlight
	}

	c.validate()
	if len(c.errors) > 0 {
		c.lifecycle = LifecycleIdle
		return c.lifecycle, nil
	}
	// Consent is deliberately the last gate: every other problem is
	// reported before the guest is asked about the checkbox.
	if !c.draft.ConsentGiven {
		c.errors[FieldConsent] = "consent is required"
		c.lifecycle = LifecycleIdle
		return c.lifecycle, nil
	}

	rec, ok := c.buildRecord()
	if !ok {
		c.errors[FieldDateTime] = "date and time are required"
		c.lifecycle = LifecycleIdle
		return c.lifecycle, nil
	}

	c.lifecycle = LifecycleSubmitting
	if err := c.gateway.Append(ctx, rec); err != nil {
		// Draft stays intact; the guest retries explicitly.
		c.lifecycle = LifecycleError
		return c.lifecycle, err
	}
	c.draft = Draft{}
	c.errors = map[string]string{}
	c.lifecycle = LifecycleSuccess
	return c.lifecycle, nil
}

// buildRecord splits the committed "YYYY-MM-DDTHH:MM" value and assembles
// the immutable outbound payload.
func (c *Controller) buildRecord() (Record, bool) {
	date, tod, found := strings.Cut(c.draft.SelectedDateTime, "T")
	if !found || date == "" || tod == "" {
		return Record{}, false
	}
	return Record{
		Name:             c.draft.Name,
		Phone:            c.draft.Phone,
		PartySize:        c.draft.PartySize,
		Notes:            c.draft.Notes,
		ConsentGiven:     c.draft.ConsentGiven,
		Date:             date,
		Time:             tod,
		DateTimeCombined: c.draft.SelectedDateTime,
		CreatedAt:        c.now().UnixMilli(),
		Status:           StatusPending,
	}, true
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
