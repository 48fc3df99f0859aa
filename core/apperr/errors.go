package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Centralized business-rule errors. All errors returned by feature services
// are built from these sentinels so handlers can map them predictably.
var (
	// ErrBadRequest signals missing or invalid input, including
	// non-positive quantities.
	ErrBadRequest = errors.New("invalid request")
	// ErrUnauthenticated signals a missing or invalid credential.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden signals a valid identity lacking the game-master flag
	// for a game-master-only operation.
	ErrForbidden = errors.New("game-master access required")
	// ErrConflict signals a duplicate derived key on create.
	ErrConflict = errors.New("already exists")
	// ErrNotFound signals an operation on a key that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientQuantity signals a remove exceeding the available
	// quantity.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrStorage wraps an underlying persistence failure. The cause is
	// logged server-side and never exposed to the caller.
	ErrStorage = errors.New("storage failure")
)

// Wrap annotates err with a sentinel so callers can classify it with
// errors.Is while the original cause stays available for logging.
func Wrap(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(sentinel, err)
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrInsufficientQuantity):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err. Storage and unclassified
// failures get a generic message; everything else reports its sentinel text.
func Respond(c *fiber.Ctx, err error) error {
	status := Status(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = ErrStorage.Error()
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
