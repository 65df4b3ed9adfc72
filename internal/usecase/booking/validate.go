package booking

import (
	"strings"
	"time"
)

// Intake validation. Staff intake requires name, phone, date and time; the
// public path additionally requires address and treatment and bounds the
// phone length. Past dates are allowed on both paths (staff log walk-ins;
// the public form's tomorrow floor is a UI default, not a rule).

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func staffIntakeFields(name, phone, date, timeStr string) []string {
	var fields []string

	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(phone) == "" {
		fields = append(fields, "phone")
	}
	switch {
	case date == "":
		fields = append(fields, "date")
	case !validDate(date):
		fields = append(fields, "date")
	}
	switch {
	case timeStr == "":
		fields = append(fields, "time")
	case !validTime(timeStr):
		fields = append(fields, "time")
	}

	return fields
}

func publicIntakeFields(name, phone, address, date, timeStr, treatment string) []string {
	fields := staffIntakeFields(name, phone, date, timeStr)

	if strings.TrimSpace(address) == "" {
		fields = append(fields, "address")
	}
	if strings.TrimSpace(treatment) == "" {
		fields = append(fields, "treatment")
	}

	phone = strings.TrimSpace(phone)
	if phone != "" && (len(phone) < 9 || len(phone) > 11) {
		fields = append(fields, "phone")
	}

	return fields
}
