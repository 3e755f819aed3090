// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for the credential and session flows.
var (
	// registrations counts registration attempts by outcome
	// (created, invalid_name, password_mismatch, invalid_email,
	// duplicate, store_error).
	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecommit_registrations_total",
		Help: "Total number of registration attempts by outcome",
	}, []string{"outcome"})

	// logins counts login attempts by outcome
	// (success, unknown_account, wrong_password, store_error).
	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecommit_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// guardDecisions counts guard evaluations by decision and reason
	// (allowed/ok, denied/missing_fields, denied/malformed_token,
	// denied/unknown_account, denied/digest_mismatch, denied/store_error).
	guardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecommit_guard_decisions_total",
		Help: "Total number of session guard decisions",
	}, []string{"decision", "reason"})
)

func recordRegistration(outcome string) {
	registrations.WithLabelValues(outcome).Inc()
}

func recordLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}

func recordGuardDecision(allowed bool, reason string) {
	decision := "denied"
	if allowed {
		decision = "allowed"
	}
	guardDecisions.WithLabelValues(decision, reason).Inc()
}
