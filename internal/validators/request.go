// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/lerkeveld/underground/models"
)

// Field names accepted by [RequestValidator.Validate] for scoping. They match
// the JSON names of the request bodies.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldCheck       = "check"
	FieldItems       = "items"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldPhone       = "phone"
	FieldCorridor    = "corridor"
	FieldRoom        = "room"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
)

const (
	MinPasswordLength    = 8
	MaxDescriptionLength = 500
	MaxCorridorLength    = 4
	MaxPhoneLength       = 16
	MaxNameLength        = 64
)

// RequestValidator validates the request bodies of the REST API and the
// user records created by the admin CLI.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are both accepted. When fields are given only the rules for those JSON
// fields run.
//
// The returned error is a validation.Errors for rule violations,
// [ErrUnsupportedType] for unknown types and [ErrUnknownField] for an
// unknown scope.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(&value, fields)
	case *models.LoginRequest:
		return v.validateLogin(value, fields)
	case models.ActivateRequest:
		return v.validateActivate(&value, fields)
	case *models.ActivateRequest:
		return v.validateActivate(value, fields)
	case models.ResetRequest:
		return v.validateReset(&value, fields)
	case *models.ResetRequest:
		return v.validateReset(value, fields)
	case models.OrderItemsRequest:
		return v.validateOrderItems(&value, fields)
	case *models.OrderItemsRequest:
		return v.validateOrderItems(value, fields)
	case models.KotbarReserveRequest:
		return v.validateKotbarReserve(&value, fields)
	case *models.KotbarReserveRequest:
		return v.validateKotbarReserve(value, fields)
	case models.MaterialReserveRequest:
		return v.validateMaterialReserve(&value, fields)
	case *models.MaterialReserveRequest:
		return v.validateMaterialReserve(value, fields)
	case models.ProfileEditRequest:
		return v.validateProfileEdit(&value, fields)
	case *models.ProfileEditRequest:
		return v.validateProfileEdit(value, fields)
	case models.SecureEditRequest:
		return v.validateSecureEdit(&value, fields)
	case *models.SecureEditRequest:
		return v.validateSecureEdit(value, fields)
	case models.PasswordResetForm:
		return v.validatePasswordReset(&value, fields)
	case *models.PasswordResetForm:
		return v.validatePasswordReset(value, fields)
	case models.User:
		return v.validateUser(&value, fields)
	case *models.User:
		return v.validateUser(value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// namedRules ties ozzo field rules to the JSON name used for scoping.
type namedRules struct {
	name  string
	rules *validation.FieldRules
}

func field(name string, fieldPtr any, rules ...validation.Rule) namedRules {
	return namedRules{name: name, rules: validation.Field(fieldPtr, rules...)}
}

func validateScoped(structPtr any, fields []string, all ...namedRules) error {
	for _, f := range fields {
		if !slices.ContainsFunc(all, func(r namedRules) bool { return r.name == f }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	selected := make([]*validation.FieldRules, 0, len(all))
	for _, r := range all {
		if len(fields) == 0 || slices.Contains(fields, r.name) {
			selected = append(selected, r.rules)
		}
	}

	return validation.ValidateStruct(structPtr, selected...)
}

func (v *RequestValidator) validateLogin(r *models.LoginRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldEmail, &r.Email, validation.Required),
		field(FieldPassword, &r.Password, validation.Required),
	)
}

func (v *RequestValidator) validateActivate(r *models.ActivateRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldEmail, &r.Email, validation.Required, is.Email),
		field(FieldPassword, &r.Password, validation.Required, validation.Length(MinPasswordLength, 0)),
	)
}

func (v *RequestValidator) validateReset(r *models.ResetRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldEmail, &r.Email, validation.Required, is.Email),
	)
}

func (v *RequestValidator) validateOrderItems(r *models.OrderItemsRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldItems, &r.Items, validation.Required, validation.By(noBlankItems)),
	)
}

func (v *RequestValidator) validateKotbarReserve(r *models.KotbarReserveRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldDate, &r.Date, validation.By(dateRequired)),
		field(FieldDescription, &r.Description, validation.Required, validation.Length(1, MaxDescriptionLength)),
	)
}

func (v *RequestValidator) validateMaterialReserve(r *models.MaterialReserveRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldDate, &r.Date, validation.By(dateRequired)),
		field(FieldItems, &r.Items, validation.Required, validation.By(noBlankItems), validation.By(distinctItems)),
	)
}

func (v *RequestValidator) validateProfileEdit(r *models.ProfileEditRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldPhone, &r.Phone, validation.Length(0, MaxPhoneLength)),
		field(FieldCorridor, &r.Corridor, validation.Length(0, MaxCorridorLength)),
		field(FieldRoom, &r.Room, validation.Min(0)),
	)
}

// validateSecureEdit requires the current password; the new email and
// password are optional but must be well-formed when present.
func (v *RequestValidator) validateSecureEdit(r *models.SecureEditRequest, fields []string) error {
	return validateScoped(r, fields,
		field(FieldCheck, &r.Check, validation.Required),
		field(FieldEmail, &r.Email, is.Email),
		field(FieldPassword, &r.Password, validation.Length(MinPasswordLength, 0)),
	)
}

func (v *RequestValidator) validatePasswordReset(r *models.PasswordResetForm, fields []string) error {
	return validateScoped(r, fields,
		field(FieldPassword, &r.Password, validation.Required, validation.Length(MinPasswordLength, 0)),
	)
}

func (v *RequestValidator) validateUser(u *models.User, fields []string) error {
	return validateScoped(u, fields,
		field(FieldEmail, &u.Email, validation.Required, is.Email),
		field(FieldFirstName, &u.FirstName, validation.Required, validation.Length(1, MaxNameLength)),
		field(FieldLastName, &u.LastName, validation.Required, validation.Length(1, MaxNameLength)),
		field(FieldPhone, &u.Phone, validation.Length(0, MaxPhoneLength)),
		field(FieldCorridor, &u.Corridor, validation.Length(0, MaxCorridorLength)),
		field(FieldRoom, &u.Room, validation.Min(0)),
	)
}

func dateRequired(value any) error {
	d, _ := value.(models.Date)
	if d.IsZero() {
		return ErrBlankDate
	}
	return nil
}

func noBlankItems(value any) error {
	items, _ := value.([]string)
	if slices.Contains(items, "") {
		return ErrBlankItem
	}
	return nil
}

func distinctItems(value any) error {
	items, _ := value.([]string)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return ErrDuplicateItems
		}
		seen[item] = struct{}{}
	}
	return nil
}
