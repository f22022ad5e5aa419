package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCompliance_AcceptsEverything(t *testing.T) {
	svc := NewDemoComplianceService(zerolog.Nop())
	ctx := context.Background()

	ok, err := svc.ShouldAcceptTransactionFromVasp(ctx, "other.example", "$alice@vasp.example")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ShouldAcceptTransactionToVasp(ctx, "other.example", "$alice@vasp.example", "$bob@other.example")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.PreScreenPayment(ctx, "$alice@vasp.example", "$bob@other.example", 1_000_000)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.RegisterTransactionMonitoring(ctx, "hash123"))
}

func TestTravelRuleInfo_BelowThreshold(t *testing.T) {
	svc := NewDemoComplianceService(zerolog.Nop())

	info, err := svc.TravelRuleInfoForTransaction(context.Background(), uuid.New(), "$bob@other.example", 99_999_999)

	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestTravelRuleInfo_AtThreshold(t *testing.T) {
	svc := NewDemoComplianceService(zerolog.Nop())
	senderID := uuid.New()

	info, err := svc.TravelRuleInfoForTransaction(context.Background(), senderID, "$bob@other.example", 100_000_000)

	require.NoError(t, err)
	require.NotNil(t, info)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(*info), &parsed))
	assert.Equal(t, senderID.String(), parsed["senderUserId"])
	assert.Equal(t, "$bob@other.example", parsed["receiverUma"])
	assert.Equal(t, "100000000", parsed["amountMsats"])
}
