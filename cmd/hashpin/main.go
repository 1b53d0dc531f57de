package main

import (
	"fmt"
	"os"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/adminauth"
)

// hashpin печатает bcrypt хеш PIN для admin.pin_hash / ADMIN_PIN_HASH
//
//	go run ./cmd/hashpin 1234
func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpin <pin>")
		os.Exit(2)
	}

	hash, err := adminauth.HashPIN(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash pin: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
