package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBalanceStatusOutstandingDenies(t *testing.T) {
	status := NewBalanceStatus("S100", 250)

	assert.Equal(t, "S100", status.StudentRegNumber)
	assert.Equal(t, 250.0, status.CurrentBalance)
	assert.False(t, status.CanViewResults)
}

func TestNewBalanceStatusZeroBalanceAllows(t *testing.T) {
	status := NewBalanceStatus("S100", 0)
	assert.True(t, status.CanViewResults)
}

func TestNewBalanceStatusCreditAllows(t *testing.T) {
	// Overpayment leaves a negative balance; results stay visible.
	status := NewBalanceStatus("S100", -30.50)
	assert.True(t, status.CanViewResults)
}

func TestNewBalanceStatusSmallDebtDenies(t *testing.T) {
	status := NewBalanceStatus("S100", 0.01)
	assert.False(t, status.CanViewResults)
}
