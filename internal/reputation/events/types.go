//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package events

import "time"

type (
	Metrics interface {
		Observe(err error, messages int, started time.Time)
	}
)
