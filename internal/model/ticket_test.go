package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketType(t *testing.T) {
	tests := []struct {
		in   string
		want TicketType
		err  error
	}{
		{in: "ADULT", want: TicketAdult},
		{in: "child", want: TicketChild},
		{in: " Infant ", want: TicketInfant},
		{in: "senior", err: ErrUnknownTicketType},
		{in: "", err: ErrUnknownTicketType},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTicketType(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTicketTypeRequest(t *testing.T) {
	r, err := NewTicketTypeRequest(TicketChild, 3)
	require.NoError(t, err)
	assert.Equal(t, TicketChild, r.Type())
	assert.Equal(t, 3, r.Count())

	_, err = NewTicketTypeRequest(TicketAdult, 0)
	assert.ErrorIs(t, err, ErrInvalidTicketCount)

	_, err = NewTicketTypeRequest(TicketAdult, -2)
	assert.ErrorIs(t, err, ErrInvalidTicketCount)

	_, err = NewTicketTypeRequest(TicketType("VIP"), 1)
	assert.ErrorIs(t, err, ErrUnknownTicketType)
}
