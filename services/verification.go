package services

import (
	"context"
	"fmt"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/models"
	"inspection-app/repositories"
	"time"

	"gorm.io/gorm"
)

// Entity names used in history entries, metrics and notifications.
const (
	EntityPODetails      = "po_details"
	EntityCallDetails    = "call_details"
	EntitySubPODetails   = "sub_po_details"
	EntityProductionLine = "production_lines"
)

// verifier applies the verification protocol to one record kind.
type verifier[T any, P repositories.RecordPtr[T]] struct {
	db       *gorm.DB
	repo     repositories.CallRecordRepository[T, P]
	history  repositories.HistoryRepository
	clock    Clock
	notifier Notifier
	entity   string
	// allRecords verifies every record of the call instead of the first one
	allRecords bool
}

// verify marks the records of callNo as verified by who. It returns
// ErrNotFound when the call has no record of this kind; nothing is written in
// that case.
func (v verifier[T, P]) verify(ctx context.Context, callNo, who string) ([]T, time.Time, error) {
	if who == "" {
		return nil, time.Time{}, newValidationError("verifiedBy is required", map[string]string{"verifiedBy": "required"})
	}

	at := v.clock.Now()
	var records []T
	err := database.Transaction(ctx, v.db, func(ctx context.Context) error {
		var err error
		records, err = v.lookup(ctx, callNo)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return ErrNotFound
		}

		for i := range records {
			rec := P(&records[i])
			rec.MarkVerified(who, at)
			rec.Touch(who, at)
		}
		if err := v.repo.SaveAll(ctx, records); err != nil {
			return err
		}

		detail := fmt.Sprintf("%d record(s) verified by %s", len(records), who)
		return v.history.Insert(ctx, callNo, models.HistoryStatusVerified, v.entity, detail, who)
	})
	if err != nil {
		return nil, time.Time{}, storageError("verify "+v.entity, err)
	}

	v.notify(ctx, VerificationEvent{
		CallNo:     callNo,
		Entity:     v.entity,
		VerifiedBy: who,
		VerifiedAt: at,
		Records:    len(records),
	})
	return records, at, nil
}

func (v verifier[T, P]) lookup(ctx context.Context, callNo string) ([]T, error) {
	if v.allRecords {
		return v.repo.FindAllByCallNo(ctx, callNo)
	}
	rec, found, err := v.repo.FindByCallNo(ctx, callNo)
	if err != nil || !found {
		return nil, err
	}
	return []T{rec}, nil
}

// notify is best effort. The verification is already committed.
func (v verifier[T, P]) notify(ctx context.Context, event VerificationEvent) {
	if v.notifier == nil {
		return
	}
	if err := v.notifier.NotifyVerified(ctx, event); err != nil {
		logger.New("verifier").Function("notify").Warn("failed to send verification notification",
			"callNo", event.CallNo, "entity", event.Entity, "error", err)
	}
}
