package models

import (
	"inspection-app/controllers/idgen"
	"inspection-app/types"
	"time"

	"gorm.io/gorm"
)

// Audit carries who touched a row and when. CreatedAt and UpdatedAt are
// filled by gorm from the configured NowFunc.
type Audit struct {
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Audit) AuditState() Audit {
	return a
}

// RestoreCreated keeps the creation stamp of a row that is being overwritten.
func (a *Audit) RestoreCreated(prev Audit) {
	a.CreatedBy = prev.CreatedBy
	a.CreatedAt = prev.CreatedAt
}

func (a *Audit) Touch(by string, at time.Time) {
	if a.CreatedBy == "" {
		a.CreatedBy = by
	}
	a.UpdatedBy = by
	a.UpdatedAt = at
}

// Verification is the one way approval state shared by every call record.
type Verification struct {
	IsVerified bool `gorm:"not null;default:false"`
	VerifiedBy *string
	VerifiedAt *time.Time
}

func (v Verification) VerificationState() Verification {
	return v
}

func (v *Verification) RestoreVerification(prev Verification) {
	*v = prev
}

func (v *Verification) MarkVerified(by string, at time.Time) {
	v.IsVerified = true
	v.VerifiedBy = &by
	v.VerifiedAt = &at
}

// CallRecord is implemented by the pointer of every model that is keyed by
// an inspection call number.
type CallRecord interface {
	CallKey() string
	Identity() types.SnowflakeID
	SetIdentity(types.SnowflakeID)

	VerificationState() Verification
	RestoreVerification(Verification)
	MarkVerified(by string, at time.Time)

	AuditState() Audit
	RestoreCreated(Audit)
	Touch(by string, at time.Time)
}

func assignID(id *types.SnowflakeID) {
	if id.IsZero() {
		*id = types.SnowflakeID(idgen.GenerateID())
	}
}

// FileLog records import files that have already been processed.
type FileLog struct {
	ID           types.SnowflakeID `gorm:"primaryKey"`
	Filename     string            `gorm:"unique;not null"`
	DateModified time.Time
	RowsImported int
	CreatedAt    time.Time
}

func (f *FileLog) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&f.ID)
	return
}
