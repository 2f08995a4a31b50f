// Package config hold configuration shared between commands and services.
package config

//
// config.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"time"

	"gitlab.com/kabes/go-podcatcher/internal/aerr"
)

type DBConfig struct {
	Connstr string
}

func NewDBConfig(connstr string) DBConfig {
	return DBConfig{Connstr: connstr}
}

func (d *DBConfig) Validate() error {
	if d.Connstr == "" {
		return aerr.New("database argument can't be empty").WithTag(aerr.ValidationError)
	}

	return nil
}

//-------------------------------------------------------------

// Sync defaults; import uses a wider pool than interactive background
// refresh because it is a one-shot batch.
const (
	DefaultSyncWorkers    = 10
	DefaultRefreshWorkers = 5
	DefaultMaxRetries     = 3
	DefaultConnectTimeout = 5 * time.Second
	DefaultReadTimeout    = 20 * time.Second
	DefaultRetryDelay     = time.Second
)

// SyncConfig hold tunables for one batch sync.
type SyncConfig struct {
	Workers        int
	MaxRetries     int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	RetryDelay     time.Duration
}

func NewSyncConfig() SyncConfig {
	return SyncConfig{
		Workers:        DefaultSyncWorkers,
		MaxRetries:     DefaultMaxRetries,
		ConnectTimeout: DefaultConnectTimeout,
		ReadTimeout:    DefaultReadTimeout,
		RetryDelay:     DefaultRetryDelay,
	}
}

func (s *SyncConfig) Validate() error {
	if s.Workers < 1 {
		return aerr.New("sync.workers must be positive").WithTag(aerr.ValidationError)
	}

	if s.MaxRetries < 1 {
		return aerr.New("sync.max-retries must be positive").WithTag(aerr.ValidationError)
	}

	return nil
}
