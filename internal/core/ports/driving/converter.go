package driving

import (
	"context"

	"github.com/custodia-labs/radix/internal/core/domain"
)

// ConvertRequest describes one conversion.
type ConvertRequest struct {
	// Input is the raw numeral text.
	Input string

	// From is the source base.
	From domain.Base

	// To is the target base.
	To domain.Base

	// Steps overrides the show-steps setting when non-nil.
	Steps *bool
}

// ConverterService converts numerals between bases.
type ConverterService interface {
	// Validate checks raw against the digit alphabet of base.
	Validate(raw string, base domain.Base) (domain.Numeral, error)

	// Convert runs a conversion using the current settings.
	// Errors match domain.ErrInvalidDigit, domain.ErrOverflow,
	// domain.ErrSameBase or domain.ErrInvalidBase.
	Convert(ctx context.Context, req ConvertRequest) (*domain.ConversionResult, error)
}
