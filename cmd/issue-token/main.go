// issue-token prints a bearer token for local testing of the dashboard API.
//
// Usage:
//
//	API_SECRET=... go run ./cmd/issue-token -user u1 -projects P1,P2
//	API_SECRET=... go run ./cmd/issue-token -user ops -role ADMIN
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mmdatafocus/fleetops_backend/utils"
)

func main() {
	userID := flag.String("user", "", "User id to put in the token.")
	role := flag.String("role", "CAPTAIN", "Role claim. ADMIN can read every project.")
	projects := flag.String("projects", "", "Comma-separated project ids the token grants.")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifespan.")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	token, err := utils.JwtGenerate(*userID, *role, utils.SplitAndTrim(*projects), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
