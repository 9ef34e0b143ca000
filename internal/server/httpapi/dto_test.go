package httpapi

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/dailydiet/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         registerRequest
		wantDetails []string
	}{
		{
			name: "valid",
			req:  registerRequest{Name: "Yuri", Email: "y@x.com", Password: "123"},
		},
		{
			name:        "short name",
			req:         registerRequest{Name: "Y", Email: "y@x.com", Password: "123"},
			wantDetails: []string{"Name must be at least 2 characters long."},
		},
		{
			name:        "bad email",
			req:         registerRequest{Name: "Yuri", Email: "not-an-email", Password: "123"},
			wantDetails: []string{"Invalid email format."},
		},
		{
			name:        "short password",
			req:         registerRequest{Name: "Yuri", Email: "y@x.com", Password: "12"},
			wantDetails: []string{"Password must be at least 3 characters long."},
		},
		{
			name: "everything wrong",
			req:  registerRequest{},
			wantDetails: []string{
				"Name must be at least 2 characters long.",
				"Invalid email format.",
				"Password must be at least 3 characters long.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(3)
			if tt.wantDetails == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *common.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantDetails, vErr.Details)
		})
	}
}

func TestRegisterRequest_ConfigurableMinimum(t *testing.T) {
	req := registerRequest{Name: "Yuri", Email: "y@x.com", Password: "1234567"}

	assert.NoError(t, req.Validate(3))

	err := req.Validate(8)
	var vErr *common.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Details, "Password must be at least 8 characters long.")
}

func TestCreateMealRequest_Validate(t *testing.T) {
	valid := createMealRequest{
		Name:        "Salad",
		Description: "Green salad",
		Date:        "2024-05-02",
		Hour:        "19:30",
		IsDiet:      ptr(true),
	}

	dt, err := valid.Validate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 2, 19, 30, 0, 0, time.Local), dt)
}

func TestCreateMealRequest_MissingFields(t *testing.T) {
	req := createMealRequest{}
	_, err := req.Validate()

	var vErr *common.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{
		"Name is required",
		"Description is required",
		"Date is required",
		"Hour is required",
		"IsDiet is required",
	}, vErr.Details)
}

func TestCreateMealRequest_MalformedDateOrHour(t *testing.T) {
	tests := []struct {
		name string
		date string
		hour string
	}{
		{"bad date", "02/05/2024", "19:30"},
		{"bad hour", "2024-05-02", "7pm"},
		{"swapped", "19:30", "2024-05-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createMealRequest{
				Name: "Salad", Description: "Green salad",
				Date: tt.date, Hour: tt.hour, IsDiet: ptr(true),
			}
			_, err := req.Validate()
			var vErr *common.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Details, "Invalid date or hour format.")
		})
	}
}

func TestUpdateMealRequest_DateAndHourTogether(t *testing.T) {
	req := updateMealRequest{Date: ptr("2024-06-01"), Hour: ptr("08:00")}

	upd, err := req.Validate()
	require.NoError(t, err)
	require.NotNil(t, upd.DateTime)
	assert.Equal(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local), *upd.DateTime)
}

func TestUpdateMealRequest_OneSidedPairRejected(t *testing.T) {
	for _, req := range []updateMealRequest{
		{Date: ptr("2024-06-01")},
		{Hour: ptr("08:00")},
	} {
		_, err := req.Validate()
		var vErr *common.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Details, "Date and hour must be supplied together.")
	}
}

func TestUpdateMealRequest_EmptyProvidedFieldsRejected(t *testing.T) {
	req := updateMealRequest{Name: ptr(""), Description: ptr("")}
	_, err := req.Validate()

	var vErr *common.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"Name is required", "Description is required"}, vErr.Details)
}

func TestUpdateMealRequest_NoFieldsIsValidNoop(t *testing.T) {
	upd, err := (&updateMealRequest{}).Validate()
	require.NoError(t, err)
	assert.Nil(t, upd.Name)
	assert.Nil(t, upd.Description)
	assert.Nil(t, upd.DateTime)
	assert.Nil(t, upd.IsDiet)
}
