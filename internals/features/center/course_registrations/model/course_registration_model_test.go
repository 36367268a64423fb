package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentUnpaid, PaymentStatus(900_000, 0))
	assert.Equal(t, PaymentPartiallyPaid, PaymentStatus(900_000, 300_000))
	assert.Equal(t, PaymentFullyPaid, PaymentStatus(900_000, 900_000))
	assert.Equal(t, PaymentFullyPaid, PaymentStatus(0, 0))
}

func TestEnrolled_NeedsApprovalAndFullPayment(t *testing.T) {
	m := CourseRegistrationModel{
		CourseRegistrationStatus:     StatusApproved,
		CourseRegistrationAmount:     900_000,
		CourseRegistrationPaidAmount: 300_000,
	}
	assert.False(t, m.Enrolled())

	m.CourseRegistrationPaidAmount = 900_000
	assert.True(t, m.Enrolled())

	m.CourseRegistrationStatus = StatusPending
	assert.False(t, m.Enrolled())
}

func TestBeforeSave_DerivesPaymentStatus(t *testing.T) {
	m := &CourseRegistrationModel{CourseRegistrationAmount: 500, CourseRegistrationPaidAmount: 200}
	require.NoError(t, m.BeforeSave(nil))
	assert.Equal(t, PaymentPartiallyPaid, m.CourseRegistrationPaymentStatus)
}
