package dto

import (
	"inspection-app/models"
	"time"
)

// Status is the read only part of every call record payload. Values sent by
// clients are ignored.
type Status struct {
	IsVerified bool       `json:"isVerified"`
	VerifiedBy *string    `json:"verifiedBy"`
	VerifiedAt *time.Time `json:"verifiedAt"`
	CreatedBy  string     `json:"createdBy,omitempty"`
	UpdatedBy  string     `json:"updatedBy,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

func statusFrom(v models.Verification, a models.Audit) Status {
	return Status{
		IsVerified: v.IsVerified,
		VerifiedBy: v.VerifiedBy,
		VerifiedAt: v.VerifiedAt,
		CreatedBy:  a.CreatedBy,
		UpdatedBy:  a.UpdatedBy,
		CreatedAt:  timePtr(a.CreatedAt),
		UpdatedAt:  timePtr(a.UpdatedAt),
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
