// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "set by WithUserID", ctx: WithUserID(context.Background(), 7), wantID: 7, wantOK: true},
		{name: "zero id", ctx: WithUserID(context.Background(), 0), wantID: 0, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "7")},
		{name: "plain int", ctx: context.WithValue(context.Background(), UserIDCtxKey, 7)},
		{name: "other key", ctx: context.WithValue(context.Background(), contextKey("roomID"), int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestWithUserID_DoesNotTouchParent(t *testing.T) {
	parent := WithUserID(context.Background(), 1)
	child := WithUserID(parent, 2)

	id, _ := GetUserIDFromContext(parent)
	assert.Equal(t, int64(1), id)
	id, _ = GetUserIDFromContext(child)
	assert.Equal(t, int64(2), id)
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
