package pricing

import (
	"time"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
	"github.com/yanqian/dynamic-pricing/pkg/util"
)

// Envelope wraps a recommendation for API consumers. Failed envelopes never
// carry data.
type Envelope struct {
	Success   bool    `json:"success"`
	Data      *Result `json:"data"`
	Error     *string `json:"error"`
	Timestamp string  `json:"timestamp"`

	code string
}

// Code is the AppError code behind a failed envelope, empty on success.
func (e Envelope) Code() string {
	return e.code
}

// SuccessEnvelope wraps res generated at the given time.
func SuccessEnvelope(res Result, at time.Time) Envelope {
	return Envelope{Success: true, Data: &res, Timestamp: util.Timestamp(at)}
}

// FailureEnvelope reports err without data. The AppError code is kept for
// transports and is not serialized.
func FailureEnvelope(err error, at time.Time) Envelope {
	message := err.Error()
	return Envelope{
		Success:   false,
		Error:     &message,
		Timestamp: util.Timestamp(at),
		code:      apperrors.CodeOf(err),
	}
}
