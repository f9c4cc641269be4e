package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrivas/bancario/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: domain.ErrAccountNotFound, want: http.StatusNotFound},
		{err: domain.ErrMovementNotFound, want: http.StatusNotFound},
		{err: domain.ErrCustomerNotFound, want: http.StatusNotFound},
		{err: domain.ErrInvalidMovementKind, want: http.StatusBadRequest},
		{err: domain.ErrInvalidInput, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: saldoInicial must not be negative", domain.ErrInvalidInput), want: http.StatusBadRequest},
		{err: domain.ErrInsufficientFunds, want: http.StatusConflict},
		{err: domain.ErrAccountInactive, want: http.StatusConflict},
		{err: domain.ErrAccountExists, want: http.StatusConflict},
		{err: domain.ErrCustomerExists, want: http.StatusConflict},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, mapDomainError(tt.err))
		})
	}
}
