package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/food-cooking-server/config"
)

func TestRun_StartupFailureReturnsError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{MongoURI: "postgres://not-mongo", MongoConnectTimeout: time.Second}

	err := run(cfg, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to mongodb")
}
