package ledger

import (
	"errors"
	"fmt"
)

// ErrRequiresConfirmation is returned by DeleteVehicle when the vehicle has a
// recorded sale and the caller did not acknowledge the cascade. State is unchanged;
// the caller must obtain consent and retry with cascade set.
var ErrRequiresConfirmation = errors.New("vehicle has a recorded sale, deletion requires cascade confirmation")

// ValidationError - a user-correctable input defect on a single field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError - the referenced record is absent (caller bug or stale reference).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}

// AlreadySoldError - an attempted second sale against the same vehicle.
// An invariant guard, not a bug.
type AlreadySoldError struct {
	VehicleID string
}

func (e *AlreadySoldError) Error() string {
	return fmt.Sprintf("vehicle %s already has a recorded sale", e.VehicleID)
}

// ImportFormatError - the backup payload as a whole is unusable.
// Per-collection defects are not errors; the malformed collection is skipped.
type ImportFormatError struct {
	Reason string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import payload rejected: %s", e.Reason)
}
