package main

import (
	"os"

	"github.com/SscSPs/booking_ledger_engine/cmd/bookingctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
