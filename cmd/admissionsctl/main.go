// Command admissionsctl reads admissions analytics from the command line.
//
// Usage:
//
//	admissionsctl snapshot --server http://localhost:8080
//	admissionsctl snapshot --from 2024-01-01 --to 2024-01-31
//	admissionsctl trends --from 2024-01-10
//	admissionsctl watch --interval 30s
//	admissionsctl seed yaml programs.yaml
//	admissionsctl seed sqlite programs.db
package main

import (
	"fmt"
	"os"

	"admissions-dashboard/cmd/admissionsctl/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
