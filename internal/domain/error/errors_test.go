package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrTransferInProgress.Error() != "transfer already in progress" {
		t.Errorf("ErrTransferInProgress has unexpected message: %s", ErrTransferInProgress.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"AmountBelowMinimum", ErrAmountBelowMinimum, 4002},
		{"InvalidAccountID", ErrInvalidAccountID, 4003},
		{"InvalidEmail", ErrInvalidEmail, 4003},
		{"SelfTransfer", ErrSelfTransfer, 4004},
		{"InsufficientFunds", ErrInsufficientFunds, 4005},
		{"AmountOverflow", ErrAmountOverflow, 4006},
		{"InvalidRequest", ErrInvalidRequest, 4007},
		{"InvalidSignature", ErrInvalidSignature, 4010},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"ReceiverNotFound", ErrReceiverNotFound, 4041},
		{"DuplicateReference", ErrDuplicateReference, 4090},
		{"TransferInProgress", ErrTransferInProgress, 4290},
		{"FundingInProgress", ErrFundingInProgress, 4291},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAccountID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	accountID := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")
	fundsErr := &InsufficientFundsError{
		AccountID: accountID,
		Required:  10000,
		Available: 2500,
	}

	// Test Error method
	expectedErrMsg := "insufficient funds for account a81bc81b-dead-4e5d-abff-90865d1e13b1: required 10000, available 2500"
	if fundsErr.Error() != expectedErrMsg {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", fundsErr.Error(), expectedErrMsg)
	}

	// Test Is method
	if !errors.Is(fundsErr, ErrInsufficientFunds) {
		t.Errorf("errors.Is(fundsErr, ErrInsufficientFunds) = false, want true")
	}
	if ErrorCode(fundsErr) != CodeInsufficientFunds {
		t.Errorf("ErrorCode(fundsErr) = %d, want %d", ErrorCode(fundsErr), CodeInsufficientFunds)
	}

	// Test LogFields method
	fields := fundsErr.LogFields()
	if fields["error_type"] != "insufficient_funds" {
		t.Errorf("LogFields()[error_type] = %v, want insufficient_funds", fields["error_type"])
	}
	if fields["required"] != int64(10000) {
		t.Errorf("LogFields()[required] = %v, want 10000", fields["required"])
	}
}

func TestTransferError(t *testing.T) {
	senderID := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")
	baseErr := ErrDatabaseConnection
	transferErr := &TransferError{
		SenderID:      senderID,
		ReceiverEmail: "receiver@example.com",
		Amount:        25000,
		Reason:        "store write failed",
		Err:           baseErr,
	}

	// Test Unwrap method
	if !errors.Is(transferErr, baseErr) {
		t.Errorf("errors.Is(transferErr, baseErr) = false, want true")
	}

	// Test LogFields method
	fields := transferErr.LogFields()
	if fields["receiver_email"] != "receiver@example.com" {
		t.Errorf("LogFields()[receiver_email] = %v, want receiver@example.com", fields["receiver_email"])
	}
	if fields["amount"] != int64(25000) {
		t.Errorf("LogFields()[amount] = %v, want 25000", fields["amount"])
	}
}

func TestDuplicateReferenceError(t *testing.T) {
	accountID := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")
	dupErr := NewDuplicateReferenceError(accountID, "fund_1700000000000_abc")

	if !errors.Is(dupErr, ErrDuplicateReference) {
		t.Errorf("errors.Is(dupErr, ErrDuplicateReference) = false, want true")
	}
	if !IsDuplicateReferenceError(dupErr) {
		t.Errorf("IsDuplicateReferenceError(dupErr) = false, want true")
	}
	if ErrorCode(dupErr) != CodeDuplicateReference {
		t.Errorf("ErrorCode(dupErr) = %d, want %d", ErrorCode(dupErr), CodeDuplicateReference)
	}
}

func TestErrorClassifiers(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		classifier func(error) bool
		expected   bool
	}{
		{"ContentionTransfer", ErrTransferInProgress, IsContentionError, true},
		{"ContentionFunding", ErrFundingInProgress, IsContentionError, true},
		{"ContentionOther", ErrInvalidAmount, IsContentionError, false},
		{"NotFoundAccount", ErrAccountNotFound, IsNotFoundError, true},
		{"NotFoundReceiver", ErrReceiverNotFound, IsNotFoundError, true},
		{"NotFoundOther", ErrInsufficientFunds, IsNotFoundError, false},
		{"ValidationAmount", ErrAmountBelowMinimum, IsValidationError, true},
		{"ValidationSelfTransfer", ErrSelfTransfer, IsValidationError, true},
		{"ValidationOther", ErrDatabaseConnection, IsValidationError, false},
		{"InfrastructureDatabase", ErrDatabaseConnection, IsInfrastructureError, true},
		{"InfrastructureLock", ErrLockBackend, IsInfrastructureError, true},
		{"InfrastructureQueue", ErrQueueUnavailable, IsInfrastructureError, true},
		{"InfrastructureGateway", ErrGatewayUnavailable, IsInfrastructureError, true},
		{"InfrastructureOther", ErrInvalidAmount, IsInfrastructureError, false},
		{"InsufficientWrapped", fmt.Errorf("wrapped: %w", ErrInsufficientFunds), IsInsufficientFundsError, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.classifier(tc.err); got != tc.expected {
				t.Errorf("classifier(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
