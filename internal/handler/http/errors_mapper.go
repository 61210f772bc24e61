// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/lerkeveld/underground/internal/app"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/internal/utils"
)

// errorStatuses is checked in order and the first sentinel found in the
// wrap chain decides the status. Request and auth errors come first so
// they win over store errors they may wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMissingSessionCookie, http.StatusUnauthorized},
	{ErrCSRFMismatch, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrNoUserID, http.StatusUnauthorized},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNotActivated, http.StatusForbidden},
	{service.ErrAlreadyActivated, http.StatusForbidden},
	{service.ErrEmailNotLinked, http.StatusForbidden},
	{service.ErrWrongPassword, http.StatusBadRequest},
	{service.ErrNotEditable, http.StatusBadRequest},
	{service.ErrDateOutOfRange, http.StatusBadRequest},
	{service.ErrUnknownItem, http.StatusBadRequest},
	{service.ErrDuplicateItems, http.StatusBadRequest},
	{service.ErrPreviouslyBooked, http.StatusBadRequest},
	{service.ErrForbidden, http.StatusBadRequest},

	{store.ErrUserNotFound, http.StatusBadRequest},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrOrderDateNotFound, http.StatusBadRequest},
	{store.ErrDateAlreadyBooked, http.StatusBadRequest},
	{store.ErrItemAlreadyBooked, http.StatusBadRequest},
	{store.ErrReservationNotFound, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// errorMessages holds the messages shown to residents by the front-end.
// Errors without an entry get the status line as message.
var errorMessages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrNotActivated, app.MsgNotActivated},
	{service.ErrAlreadyActivated, app.MsgAlreadyActivated},
	{service.ErrEmailNotLinked, app.MsgEmailNotLinked},
}

func statusFromError(err error) int {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.msg
		}
	}
	return statusLine(status)
}

// statusLine renders e.g. "400 Bad Request".
func statusLine(status int) string {
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}

// writeError maps err to a status and an [models.ErrorResponse]. Field
// level problems, from the validator or from a service rule, are reported
// under "errors" keyed by the JSON field name.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	var (
		validationErrs validation.Errors
		fieldErr       *service.FieldError
	)
	switch {
	case errors.As(err, &validationErrs):
		utils.WriteError(w, status, statusLine(status), validationErrs)
	case errors.As(err, &fieldErr):
		utils.WriteError(w, status, statusLine(status), map[string]string{fieldErr.Field: fieldErr.Err.Error()})
	case status >= http.StatusInternalServerError:
		utils.WriteError(w, status, statusLine(status), nil)
	default:
		utils.WriteError(w, status, messageFromError(err, status), nil)
	}
}
