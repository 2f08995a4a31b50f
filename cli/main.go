package main

//
// main.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	_ "github.com/mattn/go-sqlite3"

	"gitlab.com/kabes/go-podcatcher/internal/cli"
)

func main() {
	cli.Main()
}
