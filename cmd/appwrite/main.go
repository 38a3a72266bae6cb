// Command appwrite is a small command line client for the Appwrite API.
//
// Usage:
//
//	appwrite [--endpoint URL] [--project ID] [--key KEY] <command>
//
// Connection settings fall back to APPWRITE_ENDPOINT, APPWRITE_PROJECT_ID and
// APPWRITE_API_KEY, which may also be set in a .env file.
package main

import (
	"os"

	"github.com/DrewBradfordXYZ/appwrite-go/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
