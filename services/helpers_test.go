package services

import (
	"io"
	"time"

	"hcm-analyzer/config"
	"hcm-analyzer/utils"
)

var testDay = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func quietLogger() *utils.Logger {
	return utils.NewLoggerTo(io.Discard, false)
}

func newTestGenerator() *Generator {
	return NewGenerator(config.DefaultCatalog(), testDay, quietLogger())
}
