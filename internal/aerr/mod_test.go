package aerr

//
// mod_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"fmt"
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

func TestAppErrorWrap(t *testing.T) {
	err := errors.New("error1")
	werr := Wrapf(err, "wrapped")

	assert.Equal(t, werr.Error(), "wrapped")
	assert.True(t, errors.Is(werr, err))

	var ae *AppError

	assert.True(t, errors.As(werr, &ae))
}

func TestAppErrorTags(t *testing.T) {
	err := New("boom").WithTag(TransportError)

	assert.True(t, HasTag(err, TransportError))
	assert.True(t, !HasTag(err, StorageError))

	// tags accumulate over the chain
	werr := ApplyFor(ErrDatabase, err)
	assert.True(t, HasTag(werr, TransportError))
	assert.True(t, HasTag(werr, StorageError))
	assert.Equal(t, len(GetTags(werr)), 2)

	// duplicated tag is ignored
	err.WithTag(TransportError)
	assert.Equal(t, len(GetTags(err)), 1)
}

func TestAppErrorUserMessage(t *testing.T) {
	err := New("internal detail").WithUserMsg("something went wrong")

	assert.Equal(t, GetUserMessage(err), "something went wrong")
	assert.Equal(t, GetUserMessage(errors.New("plain")), "")
	assert.Equal(t, GetUserMessageOr(errors.New("plain"), "fallback"), "fallback")

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, GetUserMessage(wrapped), "something went wrong")
}

func TestApplyFor(t *testing.T) {
	cause := errors.New("disk full")
	err := ApplyFor(ErrDatabase, cause, "insert failed")

	assert.Equal(t, err.Error(), "insert failed")
	assert.True(t, errors.Is(err, cause))
	assert.True(t, HasTag(err, StorageError))

	// sentinel stays untouched
	assert.Equal(t, ErrDatabase.Error(), "database error")

	// derived error still matches the sentinel
	assert.True(t, errors.Is(err, ErrDatabase))
	assert.True(t, !errors.Is(err, ErrTransport))

	assert.Equal(t, ApplyFor(ErrDatabase, nil), nil)
}

func TestFlatten(t *testing.T) {
	e1 := New("inner")
	e2 := Wrapf(e1, "outer")

	flat := Flatten(e2)
	assert.Equal(t, len(flat), 2)
	assert.Equal(t, flat[0].Error(), "inner")
	assert.Equal(t, flat[1].Error(), "outer")

	assert.Equal(t, len(Flatten(nil)), 0)
	assert.Equal(t, len(Flatten(errors.New("plain"))), 0)
}
