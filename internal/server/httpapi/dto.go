package httpapi

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/dmitrijs2005/dailydiet/internal/common"
	"github.com/dmitrijs2005/dailydiet/internal/server/services"
)

// dateLayout and hourLayout describe the wire format of the two halves of a
// meal timestamp; they combine into one local-time value.
const (
	dateLayout     = "2006-01-02"
	hourLayout     = "15:04"
	dateTimeLayout = dateLayout + " " + hourLayout
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration input and returns a ValidationError with
// one message per failed field.
func (r *registerRequest) Validate(passwordMinLength int) error {
	var details []string

	if len(r.Name) < 2 {
		details = append(details, "Name must be at least 2 characters long.")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		details = append(details, "Invalid email format.")
	}
	if len(r.Password) < passwordMinLength {
		details = append(details, fmt.Sprintf("Password must be at least %d characters long.", passwordMinLength))
	}

	if len(details) > 0 {
		return common.NewValidationError(details...)
	}
	return nil
}

type createMealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Hour        string `json:"hour"`
	IsDiet      *bool  `json:"isDiet"`
}

// Validate checks the input and returns the combined date+hour timestamp.
func (r *createMealRequest) Validate() (time.Time, error) {
	var details []string

	if r.Name == "" {
		details = append(details, "Name is required")
	}
	if r.Description == "" {
		details = append(details, "Description is required")
	}
	if r.Date == "" {
		details = append(details, "Date is required")
	}
	if r.Hour == "" {
		details = append(details, "Hour is required")
	}
	if r.IsDiet == nil {
		details = append(details, "IsDiet is required")
	}

	var dateTime time.Time
	if r.Date != "" && r.Hour != "" {
		var err error
		dateTime, err = combineDateTime(r.Date, r.Hour)
		if err != nil {
			details = append(details, "Invalid date or hour format.")
		}
	}

	if len(details) > 0 {
		return time.Time{}, common.NewValidationError(details...)
	}
	return dateTime, nil
}

type updateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Hour        *string `json:"hour"`
	IsDiet      *bool   `json:"isDiet"`
}

// Validate checks the partial update and converts it into a
// services.MealUpdate. The date and hour halves of the timestamp must be
// supplied together: recombining with only one side present would produce
// an unintended value, so a one-sided pair is rejected.
func (r *updateMealRequest) Validate() (services.MealUpdate, error) {
	var details []string

	if r.Name != nil && *r.Name == "" {
		details = append(details, "Name is required")
	}
	if r.Description != nil && *r.Description == "" {
		details = append(details, "Description is required")
	}

	upd := services.MealUpdate{
		Name:        r.Name,
		Description: r.Description,
		IsDiet:      r.IsDiet,
	}

	switch {
	case r.Date != nil && r.Hour != nil:
		dateTime, err := combineDateTime(*r.Date, *r.Hour)
		if err != nil {
			details = append(details, "Invalid date or hour format.")
		} else {
			upd.DateTime = &dateTime
		}
	case r.Date != nil || r.Hour != nil:
		details = append(details, "Date and hour must be supplied together.")
	}

	if len(details) > 0 {
		return services.MealUpdate{}, common.NewValidationError(details...)
	}
	return upd, nil
}

func combineDateTime(date, hour string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, date+" "+hour, time.Local)
}
