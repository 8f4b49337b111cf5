package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"token-auth-server/internal/security"
)

const (
	statusSuccess = "success"
)

var (
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of registration attempts by outcome.",
		},
		[]string{"status"},
	)

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts by outcome.",
		},
		[]string{"status"},
	)

	refreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_refreshes_total",
			Help: "Total number of token refresh attempts by outcome.",
		},
		[]string{"status"},
	)

	logoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_logouts_total",
		Help: "Total number of logout requests.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_verifications_total",
			Help: "Total number of access token verifications by status.",
		},
		[]string{"status"},
	)
)

// outcome : значение метки status для результата операции
func outcome(err error) string {
	if err == nil {
		return statusSuccess
	}
	return classifyError(err).code
}

type instrumentedValidator struct {
	next security.AccessTokenValidator
}

// InstrumentValidator считает проверки access токенов в auth_token_verifications_total
func InstrumentValidator(validator security.AccessTokenValidator) security.AccessTokenValidator {
	return &instrumentedValidator{next: validator}
}

func (v *instrumentedValidator) ValidateAccessToken(token string) (*security.Claims, error) {
	claims, err := v.next.ValidateAccessToken(token)
	tokenVerificationsTotal.WithLabelValues(outcome(err)).Inc()
	return claims, err
}
