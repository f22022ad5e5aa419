package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// travelRuleThresholdMsats is the amount at or above which travel rule
// information is attached to outgoing payments.
const travelRuleThresholdMsats = 100_000_000

// DemoComplianceService implements ports.ComplianceService. It accepts
// every counterparty and payment but keeps the hooks the payment flows
// call, so a real screening provider can be dropped in.
type DemoComplianceService struct {
	log zerolog.Logger
}

// NewDemoComplianceService creates a new compliance service.
func NewDemoComplianceService(log zerolog.Logger) *DemoComplianceService {
	return &DemoComplianceService{
		log: log.With().Str("component", "compliance_service").Logger(),
	}
}

func (s *DemoComplianceService) ShouldAcceptTransactionFromVasp(ctx context.Context, sendingVaspDomain, receiverUma string) (bool, error) {
	s.log.Debug().
		Str("sending_vasp_domain", sendingVaspDomain).
		Str("receiver_uma", receiverUma).
		Msg("screening inbound counterparty")
	return true, nil
}

func (s *DemoComplianceService) ShouldAcceptTransactionToVasp(ctx context.Context, receivingVaspDomain, senderUma, receiverUma string) (bool, error) {
	s.log.Debug().
		Str("receiving_vasp_domain", receivingVaspDomain).
		Str("sender_uma", senderUma).
		Str("receiver_uma", receiverUma).
		Msg("screening outbound counterparty")
	return true, nil
}

func (s *DemoComplianceService) PreScreenPayment(ctx context.Context, senderUma, receiverUma string, amountMsats int64) (bool, error) {
	s.log.Debug().
		Str("sender_uma", senderUma).
		Str("receiver_uma", receiverUma).
		Int64("amount_msats", amountMsats).
		Msg("pre-screening payment")
	return true, nil
}

func (s *DemoComplianceService) RegisterTransactionMonitoring(ctx context.Context, paymentHash string) error {
	s.log.Debug().Str("payment_hash", paymentHash).Msg("registered transaction for monitoring")
	return nil
}

// TravelRuleInfoForTransaction returns travel rule info for payments at or
// above the reporting threshold, nil otherwise.
func (s *DemoComplianceService) TravelRuleInfoForTransaction(ctx context.Context, senderUserID uuid.UUID, receiverUma string, amountMsats int64) (*string, error) {
	if amountMsats < travelRuleThresholdMsats {
		return nil, nil
	}
	info, err := json.Marshal(map[string]string{
		"senderUserId": senderUserID.String(),
		"receiverUma":  receiverUma,
		"amountMsats":  fmt.Sprintf("%d", amountMsats),
	})
	if err != nil {
		return nil, err
	}
	infoStr := string(info)
	return &infoStr, nil
}
