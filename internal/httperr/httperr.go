package httperr

import (
	"errors"

	"trishaw-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// From translates the ledger error taxonomy into HTTP responses. Anything
// outside the taxonomy is a persistence failure: the mutation did not commit.
func From(err error) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}
	var nferr *ledger.NotFoundError
	if errors.As(err, &nferr) {
		return fiber.NewError(fiber.StatusNotFound, nferr.Error())
	}
	var aserr *ledger.AlreadySoldError
	if errors.As(err, &aserr) {
		return fiber.NewError(fiber.StatusConflict, aserr.Error())
	}
	if errors.Is(err, ledger.ErrRequiresConfirmation) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	var iferr *ledger.ImportFormatError
	if errors.As(err, &iferr) {
		return fiber.NewError(fiber.StatusBadRequest, iferr.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "The operation did not complete")
}
