package services

import (
	"cmp"
	"context"
	"fmt"
	"inspection-app/database"
	"inspection-app/dto"
	"inspection-app/logger"
	"inspection-app/models"
	"inspection-app/repositories"
	"strconv"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type InspectionFormService struct {
	db              *gorm.DB
	poDetails       repositories.PODetailsRepository
	callDetails     repositories.CallDetailsRepository
	callRecords     repositories.CallRecordRepository[models.CallDetails, *models.CallDetails]
	subPODetails    repositories.SubPODetailsRepository
	productionLines repositories.ProductionLineRepository
	history         repositories.HistoryRepository
	clock           Clock
	notifier        Notifier
	metrics         *Metrics
	log             logger.Logger
}

func NewInspectionFormService(db *gorm.DB, clock Clock, notifier Notifier, metrics *Metrics) *InspectionFormService {
	if clock == nil {
		clock = SystemClock{}
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	callDetails := repositories.NewCallDetailsRepository(db)
	return &InspectionFormService{
		db:              db,
		poDetails:       repositories.NewPODetailsRepository(db),
		callDetails:     callDetails,
		callRecords:     callDetails,
		subPODetails:    repositories.NewSubPODetailsRepository(db),
		productionLines: repositories.NewProductionLineRepository(db),
		history:         repositories.NewHistoryRepository(db),
		clock:           clock,
		notifier:        notifier,
		metrics:         metrics,
		log:             logger.New("inspectionFormService"),
	}
}

func newVerifier[T any, P repositories.RecordPtr[T]](s *InspectionFormService, repo repositories.CallRecordRepository[T, P], entity string, all bool) verifier[T, P] {
	return verifier[T, P]{
		db:         s.db,
		repo:       repo,
		history:    s.history,
		clock:      s.clock,
		notifier:   s.notifier,
		entity:     entity,
		allRecords: all,
	}
}

// saveRecord resolves the identity of incoming and persists it. Without an
// id, or with an id no record carries, the existing record of the same call
// is overwritten. An id owned by another call is rejected. Creation stamps
// and verification state of an overwritten record are kept.
func saveRecord[T any, P repositories.RecordPtr[T]](ctx context.Context, s *InspectionFormService, repo repositories.CallRecordRepository[T, P], incoming P, actor string) error {
	return database.Transaction(ctx, s.db, func(ctx context.Context) error {
		var (
			existing T
			found    bool
			err      error
		)
		if !incoming.Identity().IsZero() {
			existing, found, err = repo.FindByID(ctx, incoming.Identity())
			if err != nil {
				return err
			}
			if found && P(&existing).CallKey() != incoming.CallKey() {
				return newValidationError("id belongs to another inspection call", map[string]string{"id": "mismatch"})
			}
		}
		if !found {
			existing, found, err = repo.FindByCallNo(ctx, incoming.CallKey())
			if err != nil {
				return err
			}
		}

		if found {
			prev := P(&existing)
			incoming.SetIdentity(prev.Identity())
			incoming.RestoreVerification(prev.VerificationState())
			incoming.RestoreCreated(prev.AuditState())
		} else {
			// fresh id on insert, a client id is never stored as is
			incoming.SetIdentity(0)
		}
		incoming.Touch(actor, s.clock.Now())
		return repo.Save(ctx, incoming)
	})
}

func validateRecord(v any) error {
	if err := dto.Validate(v); err != nil {
		return validationFrom(err, "")
	}
	return nil
}

// GetFormData assembles the PO, call and sub PO sections of a call. The
// lookups are independent and a missing section is left nil.
func (s *InspectionFormService) GetFormData(ctx context.Context, callNo string) (dto.FormData, error) {
	form := dto.FormData{InspectionCallNo: callNo}

	po, found, err := s.poDetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.FormData{}, storageError("load po details", err)
	}
	if found {
		d := dto.PODetailsFromModel(po)
		form.PODetails = &d
	}

	call, found, err := s.callDetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.FormData{}, storageError("load call details", err)
	}
	if found {
		d := dto.CallDetailsFromModel(call)
		form.CallDetails = &d
	}

	sub, found, err := s.subPODetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.FormData{}, storageError("load sub po details", err)
	}
	if found {
		d := dto.SubPODetailsFromModel(sub)
		form.SubPODetails = &d
	}

	return form, nil
}

func (s *InspectionFormService) GetHistory(ctx context.Context, callNo string) ([]models.TransactionHistory, error) {
	entries, err := s.history.FindByRefNo(ctx, callNo)
	return entries, storageError("load history", err)
}

// PO details

func (s *InspectionFormService) GetPODetails(ctx context.Context, callNo string) (dto.PODetails, error) {
	rec, found, err := s.poDetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.PODetails{}, storageError("load po details", err)
	}
	if !found {
		return dto.PODetails{}, ErrNotFound
	}
	return dto.PODetailsFromModel(rec), nil
}

func (s *InspectionFormService) PODetailsExists(ctx context.Context, callNo string) (bool, error) {
	exists, err := s.poDetails.ExistsByCallNo(ctx, callNo)
	return exists, storageError("check po details", err)
}

func (s *InspectionFormService) SavePODetails(ctx context.Context, in dto.PODetails, actor string) (out dto.PODetails, err error) {
	defer func() { s.metrics.Observe(EntityPODetails, "save", err) }()

	if err := validateRecord(in); err != nil {
		return dto.PODetails{}, err
	}
	rec := in.ToModel()
	if err := saveRecord(ctx, s, s.poDetails, &rec, actor); err != nil {
		return dto.PODetails{}, storageError("save po details", err)
	}
	return dto.PODetailsFromModel(rec), nil
}

func (s *InspectionFormService) VerifyPODetails(ctx context.Context, callNo, verifiedBy string) (out dto.PODetails, err error) {
	defer func() { s.metrics.Observe(EntityPODetails, "verify", err) }()

	recs, _, err := newVerifier(s, s.poDetails, EntityPODetails, false).verify(ctx, callNo, verifiedBy)
	if err != nil {
		return dto.PODetails{}, err
	}
	return dto.PODetailsFromModel(recs[0]), nil
}

// Call details

func (s *InspectionFormService) GetCallDetails(ctx context.Context, callNo string) (dto.CallDetails, error) {
	rec, found, err := s.callDetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.CallDetails{}, storageError("load call details", err)
	}
	if !found {
		return dto.CallDetails{}, ErrNotFound
	}
	return dto.CallDetailsFromModel(rec), nil
}

func (s *InspectionFormService) CallDetailsExists(ctx context.Context, callNo string) (bool, error) {
	exists, err := s.callDetails.ExistsByCallNo(ctx, callNo)
	return exists, storageError("check call details", err)
}

func (s *InspectionFormService) ListCallDetails(ctx context.Context, filter repositories.CallDetailsFilter) ([]dto.CallDetails, error) {
	calls, err := s.callDetails.Find(ctx, filter)
	if err != nil {
		return nil, storageError("list call details", err)
	}
	return dto.CallDetailsFromModels(calls), nil
}

func (s *InspectionFormService) SaveCallDetails(ctx context.Context, in dto.CallDetails, actor string) (out dto.CallDetails, err error) {
	defer func() { s.metrics.Observe(EntityCallDetails, "save", err) }()
	return s.saveCallDetails(ctx, in, actor)
}

func (s *InspectionFormService) saveCallDetails(ctx context.Context, in dto.CallDetails, actor string) (dto.CallDetails, error) {
	if err := validateRecord(in); err != nil {
		return dto.CallDetails{}, err
	}
	rec := in.ToModel()
	if err := saveRecord(ctx, s, s.callRecords, &rec, actor); err != nil {
		return dto.CallDetails{}, storageError("save call details", err)
	}
	return dto.CallDetailsFromModel(rec), nil
}

// UpdateCallDetails changes shift, date of inspection and offered quantity of
// the call named in the payload. A call that does not exist yet is saved in
// full instead.
func (s *InspectionFormService) UpdateCallDetails(ctx context.Context, in dto.CallDetails, actor string) (out dto.CallDetails, err error) {
	defer func() { s.metrics.Observe(EntityCallDetails, "update", err) }()
	log := s.log.Function("UpdateCallDetails")

	if err := validateRecord(in); err != nil {
		return dto.CallDetails{}, err
	}

	var (
		rec      models.CallDetails
		fallback bool
	)
	err = database.Transaction(ctx, s.db, func(ctx context.Context) error {
		existing, found, err := s.callDetails.FindByCallNo(ctx, in.InspectionCallNo)
		if err != nil {
			return err
		}
		if !found {
			fallback = true
			return nil
		}
		in.ApplyPartial(&existing)
		existing.Touch(actor, s.clock.Now())
		rec = existing
		return s.callDetails.Save(ctx, &rec)
	})
	if err != nil {
		return dto.CallDetails{}, storageError("update call details", err)
	}

	if fallback {
		log.Info("call details not found, saving in full", "callNo", in.InspectionCallNo)
		return s.saveCallDetails(ctx, in, actor)
	}
	return dto.CallDetailsFromModel(rec), nil
}

func (s *InspectionFormService) VerifyCallDetails(ctx context.Context, callNo, verifiedBy string) (out dto.CallDetails, err error) {
	defer func() { s.metrics.Observe(EntityCallDetails, "verify", err) }()

	recs, _, err := newVerifier(s, s.callRecords, EntityCallDetails, false).verify(ctx, callNo, verifiedBy)
	if err != nil {
		return dto.CallDetails{}, err
	}
	return dto.CallDetailsFromModel(recs[0]), nil
}

// Sub PO details

func (s *InspectionFormService) GetSubPODetails(ctx context.Context, callNo string) (dto.SubPODetails, error) {
	rec, found, err := s.subPODetails.FindByCallNo(ctx, callNo)
	if err != nil {
		return dto.SubPODetails{}, storageError("load sub po details", err)
	}
	if !found {
		return dto.SubPODetails{}, ErrNotFound
	}
	return dto.SubPODetailsFromModel(rec), nil
}

func (s *InspectionFormService) SaveSubPODetails(ctx context.Context, in dto.SubPODetails, actor string) (out dto.SubPODetails, err error) {
	defer func() { s.metrics.Observe(EntitySubPODetails, "save", err) }()

	if err := validateRecord(in); err != nil {
		return dto.SubPODetails{}, err
	}
	rec := in.ToModel()
	if err := saveRecord(ctx, s, s.subPODetails, &rec, actor); err != nil {
		return dto.SubPODetails{}, storageError("save sub po details", err)
	}
	return dto.SubPODetailsFromModel(rec), nil
}

func (s *InspectionFormService) VerifySubPODetails(ctx context.Context, callNo, verifiedBy string) (out dto.SubPODetails, err error) {
	defer func() { s.metrics.Observe(EntitySubPODetails, "verify", err) }()

	recs, _, err := newVerifier(s, s.subPODetails, EntitySubPODetails, false).verify(ctx, callNo, verifiedBy)
	if err != nil {
		return dto.SubPODetails{}, err
	}
	return dto.SubPODetailsFromModel(recs[0]), nil
}

// Production lines

// GetProductionLines returns the lines of a call ordered by line number. A
// call without lines yields an empty list.
func (s *InspectionFormService) GetProductionLines(ctx context.Context, callNo string) ([]dto.ProductionLine, error) {
	lines, err := s.productionLines.FindAllByCallNo(ctx, callNo)
	if err != nil {
		return nil, storageError("load production lines", err)
	}
	return dto.ProductionLinesFromModels(lines), nil
}

// SaveProductionLines replaces every line of callNo with lines in one
// transaction.
func (s *InspectionFormService) SaveProductionLines(ctx context.Context, callNo string, lines []dto.ProductionLine, actor string) (out []dto.ProductionLine, err error) {
	defer func() { s.metrics.Observe(EntityProductionLine, "save", err) }()

	if err := validateLines(callNo, lines); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	recs := make([]models.ProductionLine, 0, len(lines))
	for _, line := range lines {
		rec := line.ToModel(callNo)
		rec.Touch(actor, now)
		recs = append(recs, rec)
	}

	err = database.Transaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.productionLines.DeleteByCallNo(ctx, callNo); err != nil {
			return err
		}
		return s.productionLines.SaveAll(ctx, recs)
	})
	if err != nil {
		return nil, storageError("save production lines", err)
	}

	out = dto.ProductionLinesFromModels(recs)
	slices.SortStableFunc(out, func(a, b dto.ProductionLine) int {
		return cmp.Compare(a.LineNumber, b.LineNumber)
	})
	return out, nil
}

func validateLines(callNo string, lines []dto.ProductionLine) error {
	if callNo == "" {
		return newValidationError("validation failed", map[string]string{"callNo": "required"})
	}

	seen := make(map[int]bool, len(lines))
	for i, line := range lines {
		if err := dto.Validate(line); err != nil {
			return validationFrom(err, "lines["+strconv.Itoa(i)+"].")
		}
		if line.InspectionCallNo != "" && line.InspectionCallNo != callNo {
			return newValidationError("validation failed", map[string]string{
				fmt.Sprintf("lines[%d].inspectionCallNo", i): "mismatch",
			})
		}
		if seen[line.LineNumber] {
			return newValidationError("validation failed", map[string]string{
				fmt.Sprintf("lines[%d].lineNumber", i): "unique",
			})
		}
		seen[line.LineNumber] = true
	}
	return nil
}

// VerifyProductionLines verifies every line of the call at once with a single
// timestamp.
func (s *InspectionFormService) VerifyProductionLines(ctx context.Context, callNo, verifiedBy string) (out []dto.ProductionLine, err error) {
	defer func() { s.metrics.Observe(EntityProductionLine, "verify", err) }()

	recs, _, err := newVerifier(s, s.productionLines, EntityProductionLine, true).verify(ctx, callNo, verifiedBy)
	if err != nil {
		return nil, err
	}
	return dto.ProductionLinesFromModels(recs), nil
}
