package validator

import (
	"strings"
	"testing"
	"time"

	"swasthya/pkg/model"
)

func validBooking() *model.Booking {
	return &model.Booking{
		UserID:   "64f1b2c3d4e5f6a7b8c9d0e1",
		DoctorID: "64f1b2c3d4e5f6a7b8c9d0e2",
		Date:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:   model.BookingBooked,
	}
}

func TestValidateAcceptsValidBooking(t *testing.T) {
	v := NewBookingValidator()
	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	v := NewBookingValidator()

	cases := []struct {
		name   string
		mutate func(*model.Booking)
		field  string
	}{
		{"missing user", func(b *model.Booking) { b.UserID = "" }, "UserID"},
		{"missing doctor", func(b *model.Booking) { b.DoctorID = "" }, "DoctorID"},
		{"missing date", func(b *model.Booking) { b.Date = time.Time{} }, "Date"},
		{"malformed user id", func(b *model.Booking) { b.UserID = "nope" }, "UserID"},
		{"unknown status", func(b *model.Booking) { b.Status = "pending" }, "Status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := validBooking()
			tc.mutate(booking)

			err := v.Validate(booking)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name field %s", err.Error(), tc.field)
			}
		})
	}
}

func TestValidateDoctorRef(t *testing.T) {
	v := NewBookingValidator()

	if err := v.ValidateDoctorRef("64f1b2c3d4e5f6a7b8c9d0e2"); err != nil {
		t.Errorf("ValidateDoctorRef: %v", err)
	}

	for _, bad := range []string{"", "short", "64f1b2c3d4e5f6a7b8c9d0g1", "64f1b2c3d4e5f6a7b8c9d0e2ff"} {
		if err := v.ValidateDoctorRef(bad); err == nil {
			t.Errorf("ValidateDoctorRef(%q) should fail", bad)
		}
	}
}
