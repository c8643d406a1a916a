package postgres

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation, table string, err error, started time.Time)
}
