package services

import (
	"fmt"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
)

// invalid embrulha um erro de validação de entidade no sentinela que os
// handlers traduzem para 400
func invalid(err error) error {
	return fmt.Errorf("%w: %v", errors.ErrValidationFailed, err)
}
