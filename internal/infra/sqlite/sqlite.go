// Package sqlite implement repositories over the sqlite database.
package sqlite

//
// sqlite.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// Repository is stateless; it operates on the database context carried in
// ctx by the db package.
type Repository struct{}
