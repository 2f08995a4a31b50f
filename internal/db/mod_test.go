package db

//
// mod_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

func TestPrepareSqliteConnstr(t *testing.T) {
	t.Parallel()

	res, err := prepareSqliteConnstr(":memory:")
	assert.NoErr(t, err)
	assert.Equal(t, res, ":memory:?_fk=ON")

	res, err = prepareSqliteConnstr("podcasts.db")
	assert.NoErr(t, err)
	assert.Equal(t, res, "podcasts.db?_fk=ON&_journal_mode=WAL&_synchronous=NORMAL")

	// already set pragmas are not overwritten
	res, err = prepareSqliteConnstr("podcasts.db?_fk=OFF&_journal_mode=DELETE")
	assert.NoErr(t, err)
	assert.Equal(t, res, "podcasts.db?_fk=OFF&_journal_mode=DELETE&_synchronous=NORMAL")

	_, err = prepareSqliteConnstr("")
	assert.Err(t, err)

	_, err = prepareSqliteConnstr("file://")
	assert.Err(t, err)
}
