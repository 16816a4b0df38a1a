package book_slot

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отклоняется до любой мутации слота
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName must not exceed %d characters",
			ErrInvalidInput, domain.MaxFullNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email must not exceed %d characters",
			ErrInvalidInput, domain.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	req.FullName = name
	req.Email = email

	return nil
}
