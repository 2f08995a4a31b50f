package service

//
// errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
)

var ErrRepositoryError = aerr.New("database error").
	WithTag(aerr.StorageError).
	WithUserMsg("database error")
